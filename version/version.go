package version

// Version is overridden at build time with
// -ldflags "-X github.com/uamatch/uamatch/version.Version=vX.Y.Z".
var Version = "v0.1.0"
