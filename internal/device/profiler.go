// Package device maps a client capability probe to a layout and performance
// directive. The mapping is a deterministic table lookup plus load-budget
// scaling; identical inputs always produce identical outputs.
package device

import "uxengine/internal/types"

// baseLayout fixes columns, navigation chrome and CTA placement per form
// factor. Unknown types fall through to the mobile row, the most conservative
// rendering target.
var baseLayout = map[types.DeviceType]types.LayoutSpec{
	types.DeviceMobile: {
		Columns:    1,
		Navigation: types.NavHamburger,
		CTA:        types.CTAStickyBottom,
	},
	types.DeviceTablet: {
		Columns:    2,
		Navigation: types.NavSidebar,
		CTA:        types.CTAFloating,
	},
	types.DeviceDesktop: {
		Columns:    3,
		Navigation: types.NavHorizontal,
		CTA:        types.CTAInline,
	},
}

// baseLoadBudgetMS is the load-time budget before connection/CPU scaling.
const baseLoadBudgetMS = 2000

// connectionScale stretches the load budget for slower links. Unknown tiers
// are treated as the slowest known tier rather than rejected.
var connectionScale = map[types.ConnectionTier]float64{
	types.ConnSlow2G: 4.0,
	types.Conn2G:     3.0,
	types.Conn3G:     2.0,
	types.Conn4G:     1.25,
	types.ConnWifi:   1.0,
}

// cpuScale stretches the budget for weaker processors.
var cpuScale = map[types.Tier]float64{
	types.TierLow:    1.5,
	types.TierMedium: 1.2,
	types.TierHigh:   1.0,
}

// Optimize derives the layout directive for one device. It is referentially
// pure: no hidden state, no randomness.
func Optimize(dc types.DeviceContext) types.LayoutDirective {
	layout, ok := baseLayout[dc.Type]
	if !ok {
		layout = baseLayout[types.DeviceMobile]
	}

	connFactor, ok := connectionScale[dc.Performance.Connection]
	if !ok {
		connFactor = connectionScale[types.ConnSlow2G]
	}
	cpuFactor, ok := cpuScale[dc.Performance.CPU]
	if !ok {
		cpuFactor = cpuScale[types.TierLow]
	}

	assets := types.AssetSpec{
		ImageQuality:  imageQuality(dc),
		VideoAutoplay: videoAutoplay(dc),
	}

	return types.LayoutDirective{
		Layout:      layout,
		Performance: types.PerformanceSpec{MaxLoadTime: int(baseLoadBudgetMS * connFactor * cpuFactor)},
		Assets:      assets,
	}
}

// slowLink reports whether the connection is too weak for heavy assets.
// Unknown tiers count as slow.
func slowLink(conn types.ConnectionTier) bool {
	switch conn {
	case types.Conn4G, types.ConnWifi:
		return false
	case types.Conn3G:
		return false
	}
	return true
}

func lowCPU(cpu types.Tier) bool {
	switch cpu {
	case types.TierMedium, types.TierHigh:
		return false
	}
	return true
}

func imageQuality(dc types.DeviceContext) types.ImageQuality {
	if slowLink(dc.Performance.Connection) && lowCPU(dc.Performance.CPU) {
		return types.QualityLow
	}
	if slowLink(dc.Performance.Connection) || lowCPU(dc.Performance.CPU) {
		return types.QualityMedium
	}
	if dc.Capabilities.WebP && dc.Screen.PixelRatio >= 2 {
		return types.QualityHigh
	}
	return types.QualityMedium
}

func videoAutoplay(dc types.DeviceContext) bool {
	if slowLink(dc.Performance.Connection) && lowCPU(dc.Performance.CPU) {
		return false
	}
	// Autoplay only pays off on fast links with decent hardware.
	return (dc.Performance.Connection == types.ConnWifi || dc.Performance.Connection == types.Conn4G) &&
		!lowCPU(dc.Performance.CPU)
}
