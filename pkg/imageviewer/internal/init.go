// Package internal contains the SDL side of the image viewer: window and
// renderer setup, input mapping, image loading, fonts and logging.
// Types and functions in this package are not part of the public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // CA roots for HTTPS image locators
