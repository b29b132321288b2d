package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/socialnet/internal/client/models"
)

func printPosts(posts []models.Post) {
	if len(posts) == 0 {
		printlnFn("No posts yet")
		return
	}
	for _, p := range posts {
		printPost(p)
	}
}

func printPost(p models.Post) {
	var b strings.Builder

	fmt.Fprintf(&b, "[%d]", p.ID)
	if p.Username != "" {
		fmt.Fprintf(&b, " @%s", p.Username)
		if p.IsVerified {
			b.WriteString(" ✓")
		}
	}
	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(&b, " %s", p.CreatedAt.Format("2006-01-02 15:04"))
	}

	liked := ""
	if p.IsLiked {
		liked = " (liked)"
	}
	fmt.Fprintf(&b, "  likes: %d%s  comments: %d", p.LikesCount, liked, p.CommentsCount)

	if p.Content != "" {
		b.WriteString("\n  " + strings.ReplaceAll(p.Content, "\n", "\n  "))
	}
	if p.ImageURL != "" {
		b.WriteString("\n  image: " + p.ImageURL)
	}

	printlnFn(b.String())
}

func printUser(u models.User) {
	verified := ""
	if u.IsVerified {
		verified = " ✓"
	}
	printlnFn(fmt.Sprintf("[%d] %s @%s%s", u.ID, u.DisplayName(), u.Username, verified))
	if u.Bio != "" {
		printlnFn("  " + u.Bio)
	}
	printlnFn(fmt.Sprintf("  posts: %d  followers: %d  following: %d", u.PostsCount, u.FollowersCount, u.FollowingCount))
}

func printUsers(users []models.UserSummary) {
	if len(users) == 0 {
		printlnFn("Nobody here")
		return
	}
	for _, u := range users {
		mark := ""
		if u.IsFollowing {
			mark = " (following)"
		}
		printlnFn(fmt.Sprintf("[%d] %s @%s%s", u.ID, u.FullName, u.Username, mark))
	}
}

func printComments(comments []models.Comment) {
	if len(comments) == 0 {
		printlnFn("No comments yet")
		return
	}
	for _, c := range comments {
		indent := ""
		if c.ParentCommentID != nil {
			indent = "  "
		}
		printlnFn(fmt.Sprintf("%s[%d] @%s: %s", indent, c.ID, c.Username, c.Content))
	}
}
