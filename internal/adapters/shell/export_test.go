package shell

// ResolveEnvironment exports resolveEnvironment for testing.
var ResolveEnvironment = resolveEnvironment

// LookPathIn exports lookPath for testing.
var LookPathIn = lookPath
