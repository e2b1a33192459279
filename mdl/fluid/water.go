// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

// water constants
const (
	WaterTtriple = 273.16  // [K]
	WaterTcrit   = 647.096 // [K]
)

// waterSat holds the saturation properties of water (IAPWS-95 formulation;
// same values as usual steam tables). Reference state: u=s=0 for saturated liquid
// at the triple point.
//   columns: θ [°C], hl [kJ/kg], hv [kJ/kg], sl [kJ/(kg·K)], sv [kJ/(kg·K)]
var waterSat = [][5]float64{
	{0.01, 0.001, 2500.9, 0.0000, 9.1556},
	{10, 42.022, 2519.2, 0.1511, 8.8998},
	{20, 83.915, 2537.4, 0.2965, 8.6660},
	{30, 125.74, 2555.6, 0.4368, 8.4520},
	{40, 167.53, 2573.5, 0.5724, 8.2555},
	{50, 209.34, 2591.3, 0.7038, 8.0748},
	{60, 251.18, 2608.8, 0.8313, 7.9081},
	{70, 293.07, 2626.1, 0.9551, 7.7540},
	{80, 335.02, 2643.0, 1.0756, 7.6111},
	{90, 377.04, 2659.6, 1.1929, 7.4781},
	{100, 419.17, 2675.6, 1.3072, 7.3541},
	{120, 503.81, 2705.9, 1.5279, 7.1292},
	{140, 589.16, 2733.5, 1.7392, 6.9294},
	{160, 675.47, 2757.5, 1.9426, 6.7502},
	{180, 763.05, 2777.2, 2.1392, 6.5857},
	{200, 852.26, 2792.0, 2.3305, 6.4302},
	{220, 943.55, 2801.1, 2.5177, 6.2840},
	{240, 1037.5, 2803.0, 2.7020, 6.1423},
	{260, 1135.0, 2796.6, 2.8849, 6.0016},
	{280, 1236.7, 2779.9, 3.0685, 5.8571},
	{300, 1344.8, 2749.6, 3.2552, 5.7059},
	{320, 1461.8, 2700.6, 3.4494, 5.5372},
	{340, 1594.5, 2622.0, 3.6601, 5.3356},
	{360, 1760.0, 2481.6, 3.9167, 5.0536},
	{370, 1890.7, 2334.5, 4.1112, 4.8012},
	{373.946, 2084.3, 2084.3, 4.4070, 4.4070},
}

// add fluid to database
func init() {
	allocators["water"] = newWater
	allocators["h2o"] = newWater
}

// newWater allocates the water table in SI units
func newWater() Provider {
	return newTableC("Water", waterSat, WaterTtriple, WaterTcrit)
}
