// ABOUTME: Version information for the widget
// ABOUTME: Version is overridden at build time with -ldflags "-X ...version.Version=v1.2.3"
package version

import "fmt"

// Version is the release version
var Version = "dev"

const (
	Product      = "clockwidget"
	Manufacturer = "harperreed"
)

// String returns "product version"
func String() string {
	return fmt.Sprintf("%s %s", Product, Version)
}
