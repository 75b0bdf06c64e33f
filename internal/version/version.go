package version

// Version is overridden at build time with -ldflags "-X leadhub/internal/version.Version=...".
var Version = "dev"
