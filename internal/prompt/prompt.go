package prompt

import (
	"fmt"
	"strings"

	"github.com/JonMerlevede/fix-cloudflare-tunnel-dns/internal/util"
	"github.com/charmbracelet/huh"
)

// Interactive returns a confirm function that renders the batch as a huh
// form and blocks for an explicit answer. Defaults to no.
func Interactive() func(description string, hostnames []string) (bool, error) {
	return func(description string, hostnames []string) (bool, error) {
		var proceed bool
		confirm := huh.NewConfirm().
			Title(description).
			Description(renderHostnames(hostnames)).
			Affirmative("Proceed").
			Negative("Skip").
			Value(&proceed)
		if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
			return false, fmt.Errorf("confirmation prompt: %w", err)
		}
		return proceed, nil
	}
}

// AutoApprove returns a confirm function that approves every batch. Used
// in automation mode.
func AutoApprove() func(description string, hostnames []string) (bool, error) {
	return func(string, []string) (bool, error) {
		return true, nil
	}
}

func renderHostnames(hostnames []string) string {
	lines := util.Map(hostnames, func(hostname string) string {
		return "  - " + hostname
	})
	return strings.Join(lines, "\n")
}
