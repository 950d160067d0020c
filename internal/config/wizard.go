package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard interactively asks for the settings most sites change and
// returns the resulting Config, starting from the defaults.
func RunWizard() (*Config, error) {
	cfg := DefaultConfig()

	fmt.Println("Let's configure your portfolio.")
	fmt.Println()

	basePrompt := promptui.Prompt{
		Label:    "Base path for subdirectory hosting (blank for the site root)",
		Default:  cfg.Site.BasePath,
		Validate: validateBasePath,
	}
	base, err := basePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base path: %w", err)
	}
	cfg.Site.BasePath = NormalizeBasePath(base)

	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	port, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	if cfg.Server.Port, err = parsePort(port); err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}

	apiPrompt := promptui.Prompt{
		Label:    "Contact endpoint URL for exported pages (blank for same origin)",
		Validate: validateAPIURL,
	}
	api, err := apiPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("api url: %w", err)
	}
	cfg.Site.APIURL = strings.TrimSuffix(strings.TrimSpace(api), "/")

	originsPrompt := promptui.Prompt{
		Label: "Allowed CORS origins (comma-separated, blank for localhost only)",
	}
	origins, err := originsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("allowed origins: %w", err)
	}
	cfg.Server.AllowedOrigins = splitAndTrim(origins)

	analyticsPrompt := promptui.Select{
		Label: "Record privacy-preserving visitor analytics",
		Items: []string{"yes", "no"},
	}
	idx, _, err := analyticsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}
	cfg.Analytics.Enabled = idx == 0

	servicePrompt := promptui.Prompt{
		Label: "Email relay service ID (blank to skip)",
	}
	service, err := servicePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("relay service id: %w", err)
	}
	if service = strings.TrimSpace(service); service != "" {
		cfg.Relay.ServiceID = service
		for _, f := range []struct {
			label string
			dst   *string
		}{
			{"Email relay template ID", &cfg.Relay.TemplateID},
			{"Email relay public key", &cfg.Relay.PublicKey},
		} {
			p := promptui.Prompt{Label: f.label, Validate: required}
			v, err := p.Run()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", strings.ToLower(f.label), err)
			}
			*f.dst = strings.TrimSpace(v)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateBasePath(s string) error {
	p := NormalizeBasePath(s)
	if strings.ContainsAny(p, " ?#") {
		return fmt.Errorf("base path must not contain spaces, ? or #")
	}
	return nil
}

func parsePort(s string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}
	if p < 1 || p > 65535 {
		return 0, fmt.Errorf("port must be between 1 and 65535")
	}
	return p, nil
}

func validatePort(s string) error {
	_, err := parsePort(s)
	return err
}

func validateAPIURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "/") || strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return nil
	}
	return fmt.Errorf("must be an absolute URL or start with /")
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
