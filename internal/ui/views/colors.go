package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// palette maps color family names used in gradient descriptors to a
// representative terminal color
var palette = map[string]string{
	"slate":   "#64748b",
	"gray":    "#6b7280",
	"red":     "#dc2626",
	"orange":  "#f97316",
	"amber":   "#f59e0b",
	"yellow":  "#facc15",
	"lime":    "#84cc16",
	"green":   "#22c55e",
	"emerald": "#10b981",
	"teal":    "#14b8a6",
	"cyan":    "#06b6d4",
	"sky":     "#0ea5e9",
	"blue":    "#3b82f6",
	"indigo":  "#6366f1",
	"violet":  "#8b5cf6",
	"purple":  "#9333ea",
	"fuchsia": "#d946ef",
	"pink":    "#ec4899",
	"rose":    "#f43f5e",
	"white":   "#ffffff",
	"black":   "#000000",
}

// Gradients are the color presets cycled through when recoloring a tier
var Gradients = []struct{ Color, TextColor string }{
	{"from-red-600 to-red-700", "text-white"},
	{"from-orange-500 to-orange-600", "text-white"},
	{"from-yellow-400 to-yellow-500", "text-black"},
	{"from-green-500 to-green-600", "text-white"},
	{"from-teal-500 to-teal-600", "text-white"},
	{"from-blue-500 to-blue-600", "text-white"},
	{"from-purple-600 to-purple-700", "text-white"},
	{"from-pink-500 to-pink-600", "text-white"},
	{"from-gray-500 to-gray-600", "text-white"},
}

// NextGradient returns the preset following gradient, wrapping around.
// An unknown gradient yields the first preset.
func NextGradient(gradient string) (string, string) {
	for i, g := range Gradients {
		if g.Color == gradient {
			next := Gradients[(i+1)%len(Gradients)]
			return next.Color, next.TextColor
		}
	}
	return Gradients[0].Color, Gradients[0].TextColor
}

// GradientColor returns the terminal color for the "from-" stop of a
// gradient descriptor such as "from-red-600 to-red-700". Unknown
// descriptors fall back to gray.
func GradientColor(gradient string) lipgloss.Color {
	for _, part := range strings.Fields(gradient) {
		if name, ok := strings.CutPrefix(part, "from-"); ok {
			return familyColor(name)
		}
	}
	return familyColor(gradient)
}

// TextColor returns the terminal color for a descriptor such as "text-white"
func TextColor(descriptor string) lipgloss.Color {
	name, _ := strings.CutPrefix(strings.TrimSpace(descriptor), "text-")
	return familyColor(name)
}

func familyColor(name string) lipgloss.Color {
	family, _, _ := strings.Cut(name, "-")
	if hex, ok := palette[family]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(palette["gray"])
}
