package cli

import (
	"context"
	"fmt"
	"os"
)

// Community prints the feed.
func (a *App) Community(ctx context.Context) error {
	posts, err := a.catalog.CommunityPosts(ctx)
	if err != nil {
		printlnFn("Could not load the community feed.")
		return err
	}
	for _, p := range posts {
		printlnFn(fmt.Sprintf("%s (lvl %d) [%s, %d likes]:", p.User.Name, p.User.Level, p.Type, p.Likes))
		printlnFn("  " + p.Content)
		for _, c := range p.Comments {
			printlnFn(fmt.Sprintf("    %s: %s", c.User.Name, c.Content))
		}
	}
	return nil
}

// Post creates a new community post from the current user.
func (a *App) Post(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return nil
	}
	content, err := GetSimpleText(a.reader, "What's on your mind?", os.Stdout)
	if err != nil {
		return err
	}
	post, err := a.catalog.CreatePost(ctx, content, "discussion")
	if err != nil {
		printlnFn("Could not create the post.")
		return err
	}
	printlnFn(fmt.Sprintf("Posted as %s.", post.ID))
	return nil
}
