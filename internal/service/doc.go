// Package service provides the verb registry for file manager providers.
//
// Each provider describes the verbs it serves in its Definition, including
// how many arguments each verb requires. The registry indexes providers by
// verb so the dispatcher can check an operation's contract before running it.
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(navigation.NewProvider())
//	provider, op, ok := registry.Lookup("cd")
package service
