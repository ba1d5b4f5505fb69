package picklist

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/agiangrant/picklist/event"
)

// Platform represents the current operating system/platform
type Platform string

const (
	PlatformMacOS   Platform = "darwin"
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
	PlatformWeb     Platform = "js"
	PlatformUnknown Platform = "unknown"
)

// CurrentPlatform returns the platform the app is running on
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		return PlatformMacOS
	case "ios":
		return PlatformIOS
	case "android":
		return PlatformAndroid
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	case "js":
		return PlatformWeb
	default:
		return PlatformUnknown
	}
}

// ParsePlatform maps a platform name to a Platform. Besides the GOOS names
// it accepts "macos" and "web".
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "darwin", "macos":
		return PlatformMacOS, nil
	case "ios":
		return PlatformIOS, nil
	case "android":
		return PlatformAndroid, nil
	case "linux":
		return PlatformLinux, nil
	case "windows":
		return PlatformWindows, nil
	case "js", "web":
		return PlatformWeb, nil
	default:
		return PlatformUnknown, fmt.Errorf("%w: %q", ErrUnknownPlatform, name)
	}
}

// IsApple returns true for macOS and iOS
func (p Platform) IsApple() bool {
	return p == PlatformMacOS || p == PlatformIOS
}

// Keyboard returns the shortcut policy of the platform.
func (p Platform) Keyboard() event.Platform {
	if p.IsApple() {
		return event.ApplePlatform
	}
	return event.DefaultPlatform
}

// ResolvePlatform returns the keyboard policy for a platform name. An empty
// name resolves the platform the process runs on.
func ResolvePlatform(name string) (event.Platform, error) {
	if strings.TrimSpace(name) == "" {
		return CurrentPlatform().Keyboard(), nil
	}
	p, err := ParsePlatform(name)
	if err != nil {
		return event.Platform{}, err
	}
	return p.Keyboard(), nil
}
