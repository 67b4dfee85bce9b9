package version

// Version is set by the build process with
// -ldflags "-X github.com/linegrep/linegrep/version.Version=v1.2.3".
var Version = "v0.1.0-dev"
