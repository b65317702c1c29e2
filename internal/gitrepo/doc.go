// Package gitrepo is the git side of semtag: it lists tag names, syncs
// remotes, and creates and pushes tags, using go-git (no git binary needed
// for local operations).
package gitrepo
