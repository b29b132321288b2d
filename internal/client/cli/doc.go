// Package cli provides the interactive SocialNet terminal client.
//
// It wires the session store, the feed, profile and comment loaders, the
// people directory and the image uploader into a REPL. On start a session
// saved by an earlier run is revalidated with the server.
//
// Commands:
//   - register, login, logout, whoami
//   - feed [page], post, like <post id>
//   - comments <post id>, comment <post id>
//   - profile <user id>, follow, followers <user id>, following <user id>
//   - search <query>, upload <path>
//
// Errors are printed as messages and never end the loop. The REPL is started
// via App.Run(ctx), which blocks until the user exits.
package cli
