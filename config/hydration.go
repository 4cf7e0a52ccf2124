package config

import (
	"os"
	"strconv"
	"strings"
)

// HydrationConfig carries the fixed domain constants that are deliberately
// kept out of the validation logic: the hard daily ceiling and the set of
// one-tap quick amounts the mobile client offers.
type HydrationConfig struct {
	DailyMaxMl   int
	QuickAmounts []int
}

const defaultDailyMaxMl = 5000

var defaultQuickAmounts = []int{150, 250, 330, 500, 750}

func LoadHydrationConfig() HydrationConfig {
	cfg := HydrationConfig{
		DailyMaxMl:   defaultDailyMaxMl,
		QuickAmounts: defaultQuickAmounts,
	}

	if v := os.Getenv("HYDRATION_DAILY_MAX_ML"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DailyMaxMl = n
		}
	}

	// e.g. HYDRATION_QUICK_AMOUNTS=150,250,330,500,750
	if v := os.Getenv("HYDRATION_QUICK_AMOUNTS"); v != "" {
		var amounts []int
		for _, part := range strings.Split(v, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || n <= 0 {
				amounts = nil
				break
			}
			amounts = append(amounts, n)
		}
		if len(amounts) > 0 {
			cfg.QuickAmounts = amounts
		}
	}

	return cfg
}
