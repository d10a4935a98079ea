package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/config"
)

var (
	badge  = color.New(color.FgHiWhite, color.BgMagenta, color.Bold)
	dim    = color.New(color.FgHiBlack)
	accent = color.New(color.FgHiMagenta)
)

func printBanner(cfg *config.Config) {
	line := dim.Sprint(strings.Repeat("─", 52))

	fmt.Println()
	fmt.Println(line)
	fmt.Printf("  %s  %s\n", badge.Sprint(" ◆ CLAZZY "), dim.Sprint("outfit colour advisor"))
	fmt.Printf("  %-10s %s\n", "listen", accent.Sprintf("http://%s", cfg.Server.Addr()))
	fmt.Printf("  %-10s %s\n", "store", accent.Sprint(cfg.Store.Driver))
	if cfg.Metrics.Enabled {
		fmt.Printf("  %-10s %s\n", "metrics", accent.Sprint(cfg.Metrics.Path))
	}
	advisor := "off"
	if cfg.Advisor.Enabled {
		advisor = cfg.Advisor.Model
	}
	fmt.Printf("  %-10s %s\n", "advisor", accent.Sprint(advisor))
	fmt.Println(line)
	fmt.Println()
}
