package version

import "fmt"

// Version, GitCommit, and BuildDate are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/openhlx/hlxproxyd/pkg/version.Version=v1.0.0 \
//	  -X github.com/openhlx/hlxproxyd/pkg/version.GitCommit=abc1234 \
//	  -X github.com/openhlx/hlxproxyd/pkg/version.BuildDate=2026-01-01"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info returns a single-line build description for `hlxproxyd version`.
func Info() string {
	return fmt.Sprintf("hlxproxyd %s (%s, built %s)", Version, GitCommit, BuildDate)
}
