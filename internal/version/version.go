package version

// Build-time injection variables, set via -ldflags during build:
//
//	go build -ldflags="-X 'github.com/OlDeuS1/Dormitory-Management-System/internal/version.Version=1.0.0'"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)
