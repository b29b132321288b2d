// Package services contains the application services of the SocialNet
// client: the session store, the feed and profile loaders, comments, the
// people directory, and the image upload helper.
//
// Services hold the client-side copy of server state. They never invent
// values: counters and flags change only when the server acknowledges them.
// Each service serialises its own operations in call order; there is no
// ordering across services.
package services
