// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors turns network failures from the catalog service and
// data source connections into user-friendly troubleshooting messages.
package httperrors

import (
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"

	"vqr/cli/internal/catalog"
)

// Diagnosis is a short explanation of a failure and what to check.
type Diagnosis struct {
	Title string
	Hints []string
}

// Diagnose classifies err. context describes what was being done, e.g.
// "looking up dataset USER999.AWS_ACCOUNTS"; host names the remote end.
func Diagnose(err error, context, host string) Diagnosis {
	if host == "" {
		host = "the server"
	}

	var se *catalog.StatusError
	if errors.As(err, &se) {
		switch {
		case se.StatusCode == 401 || se.StatusCode == 403:
			return Diagnosis{
				Title: "Catalog rejected the API token while " + context,
				Hints: []string{
					"Store a valid token with: vqr token",
					"Or set VQR_CATALOG_TOKEN for this shell",
				},
			}
		case se.StatusCode >= 500:
			return Diagnosis{
				Title: "Catalog service error while " + context,
				Hints: []string{
					"Response from " + host + ": " + se.Error(),
					"This is not a problem with your setup; try again in a few minutes",
				},
			}
		}
	}

	switch {
	case isTimeoutError(err):
		return Diagnosis{
			Title: "Connection timeout while " + context,
			Hints: []string{
				host + " took too long to respond",
				"Check for slow network links or a firewall dropping traffic",
			},
		}
	case isDNSError(err):
		return Diagnosis{
			Title: "Cannot resolve " + host + " while " + context,
			Hints: []string{
				"Check that the host name in the catalog or data source URL is correct",
				"Check DNS settings and VPN connectivity",
			},
		}
	case isConnectionRefusedError(err):
		return Diagnosis{
			Title: "Connection refused while " + context,
			Hints: []string{
				host + " is not accepting connections",
				"Check the port in the URL and whether the service is running",
			},
		}
	case isSSLError(err):
		return Diagnosis{
			Title: "Secure connection failed while " + context,
			Hints: []string{
				"TLS certificate problem or a proxy interfering with HTTPS",
				"Check your system date and time",
			},
		}
	}

	msg := err.Error()
	if len(msg) > 100 {
		msg = msg[:100] + "..."
	}
	return Diagnosis{
		Title: "Cannot reach " + host + " while " + context,
		Hints: []string{msg},
	}
}

// Print writes the diagnosis for err to the terminal.
func Print(err error, context, host string) {
	if err == nil {
		return
	}
	d := Diagnose(err, context, host)
	pterm.Error.Println(d.Title)
	for _, h := range d.Hints {
		pterm.Println("  • " + h)
	}
	pterm.Println()
}

// IsNetworkError reports whether err came from the network layer rather
// than from a server response or local validation.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var se *catalog.StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= 500 || se.StatusCode == 401 || se.StatusCode == 403
	}
	var netErr net.Error
	var urlErr *url.Error
	return errors.As(err, &netErr) || errors.As(err, &urlErr) || isConnectionRefusedError(err)
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isConnectionRefusedError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

func isSSLError(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}

// ExtractHostFromURL extracts the host from a URL for error messages.
// JDBC prefixes are ignored.
func ExtractHostFromURL(rawURL string) string {
	s := strings.TrimPrefix(rawURL, "jdbc:")
	if i := strings.Index(s, ";"); i != -1 {
		s = s[:i]
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Host
}
