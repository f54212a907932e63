// Package core contains the plumbing shared by the asynchronous parts of the
// module: context-carried options and the dispatchers that run background
// work (settlement bridges and async runners). It defines no tag semantics.
package core
