package device

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"uxengine/internal/types"
)

func fastDesktop() types.DeviceContext {
	return types.DeviceContext{
		Type:   types.DeviceDesktop,
		Screen: types.ScreenInfo{Width: 2560, Height: 1440, PixelRatio: 2},
		Performance: types.DevicePerformance{
			CPU:        types.TierHigh,
			Memory:     types.TierHigh,
			Connection: types.ConnWifi,
		},
		Input:        types.InputMethods{Mouse: true, Keyboard: true},
		Capabilities: types.DeviceCapabilities{WebGL: true, WebP: true, ModernJS: true},
	}
}

func TestOptimizeBaseLayoutPerFormFactor(t *testing.T) {
	tests := []struct {
		devType types.DeviceType
		columns int
		nav     types.NavigationStyle
		cta     types.CTAPlacement
	}{
		{types.DeviceMobile, 1, types.NavHamburger, types.CTAStickyBottom},
		{types.DeviceTablet, 2, types.NavSidebar, types.CTAFloating},
		{types.DeviceDesktop, 3, types.NavHorizontal, types.CTAInline},
		// Unknown form factors degrade to the mobile row.
		{types.DeviceType("smart-fridge"), 1, types.NavHamburger, types.CTAStickyBottom},
	}

	for _, tt := range tests {
		dc := fastDesktop()
		dc.Type = tt.devType
		got := Optimize(dc).Layout
		if got.Columns != tt.columns || got.Navigation != tt.nav || got.CTA != tt.cta {
			t.Fatalf("%s: got %+v", tt.devType, got)
		}
	}
}

func TestOptimizeIsReferentiallyPure(t *testing.T) {
	dc := fastDesktop()
	first := Optimize(dc)
	for i := 0; i < 100; i++ {
		if diff := cmp.Diff(first, Optimize(dc)); diff != "" {
			t.Fatalf("output changed across calls (-first +now):\n%s", diff)
		}
	}
}

func TestOptimizeSlowConnectionScalesLoadBudget(t *testing.T) {
	fast := Optimize(fastDesktop())

	slow := fastDesktop()
	slow.Performance.Connection = types.Conn2G
	slowOut := Optimize(slow)

	if slowOut.Performance.MaxLoadTime <= fast.Performance.MaxLoadTime {
		t.Fatalf("2g budget %d should exceed wifi budget %d",
			slowOut.Performance.MaxLoadTime, fast.Performance.MaxLoadTime)
	}
}

func TestOptimizeSlowLowForcesDegradedAssets(t *testing.T) {
	dc := fastDesktop()
	dc.Performance.Connection = types.ConnSlow2G
	dc.Performance.CPU = types.TierLow

	out := Optimize(dc)
	if out.Assets.ImageQuality != types.QualityLow {
		t.Fatalf("expected low image quality, got %s", out.Assets.ImageQuality)
	}
	if out.Assets.VideoAutoplay {
		t.Fatalf("expected video autoplay disabled on slow/low devices")
	}
}

func TestOptimizeHighEndGetsRichAssets(t *testing.T) {
	out := Optimize(fastDesktop())
	if out.Assets.ImageQuality != types.QualityHigh {
		t.Fatalf("expected high image quality, got %s", out.Assets.ImageQuality)
	}
	if !out.Assets.VideoAutoplay {
		t.Fatalf("expected video autoplay on wifi/high-cpu device")
	}
}

func TestOptimizeUnknownTiersTreatedAsWorstCase(t *testing.T) {
	dc := fastDesktop()
	dc.Performance.Connection = types.ConnectionTier("quantum")
	dc.Performance.CPU = types.Tier("overclocked")

	out := Optimize(dc)
	if out.Assets.ImageQuality != types.QualityLow {
		t.Fatalf("unknown tiers should degrade assets, got %s", out.Assets.ImageQuality)
	}
	if out.Performance.MaxLoadTime <= baseLoadBudgetMS {
		t.Fatalf("unknown tiers should stretch the load budget, got %d", out.Performance.MaxLoadTime)
	}
}
