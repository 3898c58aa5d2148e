// Package providers groups the service providers behind the file manager's
// console verbs.
//
// Available Providers:
//   - navigation: up, cd
//   - filesystem: ls, add, mkdir, cat, rn, cp, mv, rm, hash, compress, decompress
//   - system: os
//
// Provider Interface:
//   - Definition(): Returns service metadata and the verbs it serves, with
//     their required arguments
//   - Execute(): Runs one verb against the session and returns an Outcome
//
// Streaming verbs return an Outcome holding a task handle; their completion
// line is printed by the task runner when the stream finishes.
package providers
