package chem

import "testing"

func near(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestPressure(t *testing.T) {
	got := Pressure(10, 300, 1000)
	want := 10 * IdealGasConstant * 300 / 1000
	if !near(got, want, 1e-9) {
		t.Errorf("Pressure(10,300,1000) = %v, want %v", got, want)
	}
	if got := Pressure(10, 300, 0); got != 0 {
		t.Errorf("Pressure with V<=0 = %v, want 0", got)
	}
}

func TestMolesRoundTrip(t *testing.T) {
	n, temp, v := 10.0, 300.0, 1000.0
	p := Pressure(n, temp, v)
	got := Moles(p, v, temp)
	if !near(got, n, n*1e-6) {
		t.Errorf("round trip Moles(Pressure(n,T,V),V,T) = %v, want %v", got, n)
	}
}

func TestTemperatureFloorsAtZero(t *testing.T) {
	if got := Temperature(-5, 1, 1); got != 0 {
		t.Errorf("Temperature with negative P = %v, want 0", got)
	}
	if got := Temperature(1, 1, 0); got != 0 {
		t.Errorf("Temperature with n<=0 = %v, want 0", got)
	}
}

func TestVolumeGuardsNonPositivePressure(t *testing.T) {
	if got := Volume(1, 1, 0); got != 0 {
		t.Errorf("Volume with P<=0 = %v, want 0", got)
	}
}

func TestCelsiusKelvinRoundTrip(t *testing.T) {
	c := 21.5
	if got := KelvinToCelsius(CelsiusToKelvin(c)); !near(got, c, 1e-9) {
		t.Errorf("celsius round trip = %v, want %v", got, c)
	}
}

func TestMapToScale(t *testing.T) {
	if got := MapToScale(0, 10, 0, 100, 5); !near(got, 50, 1e-9) {
		t.Errorf("MapToScale midpoint = %v, want 50", got)
	}
	if got := MapToScale(5, 5, 0, 100, 5); got != 0 {
		t.Errorf("MapToScale with zero input range = %v, want outMin 0", got)
	}
}

func TestMolesForStateChangeNeverNegative(t *testing.T) {
	if got := MolesForStateChange(-10, 0); got != 0 {
		t.Errorf("MolesForStateChange with latentHeat<=0 = %v, want 0", got)
	}
	if got := MolesForStateChange(-10, 5); got != 0 {
		t.Errorf("MolesForStateChange with negative energy = %v, want 0 (clamped)", got)
	}
}
