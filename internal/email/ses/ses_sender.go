package ses

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"studioportal/internal/domain"
	"studioportal/internal/port"
	"studioportal/internal/pricing"
)

// emailAPI is the subset of the SES client the sender uses.
type emailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type sesSender struct {
	client      emailAPI
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESSender creates a new SES-backed PackageNotifier.
func NewSESSender(region, fromAddress, fromName, frontendURL string) (port.PackageNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return newSender(sesv2.NewFromConfig(cfg), fromAddress, fromName, frontendURL), nil
}

func newSender(client emailAPI, fromAddress, fromName, frontendURL string) *sesSender {
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
		frontendURL: frontendURL,
	}
}

func (s *sesSender) SendPackageUpdated(ctx context.Context, toEmail string, pkg *domain.Package) error {
	packageURL := fmt.Sprintf("%s/packages/%s", s.frontendURL, pkg.ID)
	lines := summaryLines(pkg)

	subject := fmt.Sprintf("Package updated: %s", pkg.Name)
	htmlBody := buildPackageUpdatedHTML(pkg, lines, packageURL)
	textBody := fmt.Sprintf("The package %q was updated.\n\nBase price: %s\n%s\n\nReview it at:\n%s\n\nStudio Portal",
		pkg.Name, pricing.FormatUSD(pkg.Price), strings.Join(lines, "\n"), packageURL)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(htmlBody)},
					Text: &types.Content{Data: aws.String(textBody)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

// summaryLines lists each item in display order with its tier sentences.
func summaryLines(pkg *domain.Package) []string {
	items := make([]domain.PackageItem, len(pkg.Items))
	copy(items, pkg.Items)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })

	var lines []string
	for i := range items {
		item := &items[i]
		switch item.Kind {
		case domain.ItemKindPriced:
			lines = append(lines, fmt.Sprintf("- %s: %s each", item.Name, pricing.FormatUSD(item.Price)))
		case domain.ItemKindTiered:
			lines = append(lines, fmt.Sprintf("- %s:", item.Name))
			for _, v := range pricing.Views(item.Statements) {
				lines = append(lines, "    "+v.Description)
			}
		default:
			lines = append(lines, fmt.Sprintf("- %s: %d included", item.Name, item.Quantities))
		}
	}
	return lines
}

func buildPackageUpdatedHTML(pkg *domain.Package, lines []string, packageURL string) string {
	var items strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&items, "    <li>%s</li>\n", html.EscapeString(strings.TrimSpace(strings.TrimPrefix(l, "- "))))
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">%s was updated</h2>
  <p>Base price: <strong>%s</strong></p>
  <ul>
%s  </ul>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Review Package</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Studio Portal</p>
</body>
</html>`, html.EscapeString(pkg.Name), pricing.FormatUSD(pkg.Price), items.String(), html.EscapeString(packageURL))
}
