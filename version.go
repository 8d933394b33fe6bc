package chaos

// Version is the semantic version of the chaos library.
const Version = "0.0.1"

// LibraryVersion reports the running library's semantic version.
func LibraryVersion() string { return Version }
