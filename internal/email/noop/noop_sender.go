package noop

import (
	"context"
	"fmt"
	"log"

	"studioportal/internal/domain"
	"studioportal/internal/port"
)

type noopSender struct {
	frontendURL string
}

// NewNoopSender creates a no-op PackageNotifier that logs package links to stdout.
func NewNoopSender(frontendURL string) port.PackageNotifier {
	return &noopSender{frontendURL: frontendURL}
}

func (s *noopSender) SendPackageUpdated(_ context.Context, toEmail string, pkg *domain.Package) error {
	packageURL := fmt.Sprintf("%s/packages/%s", s.frontendURL, pkg.ID)
	log.Printf("[NOOP EMAIL] Package %q updated, notifying %s: %s", pkg.Name, toEmail, packageURL)
	return nil
}
