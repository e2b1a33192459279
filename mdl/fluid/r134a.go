// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

// R134a (1,1,1,2-tetrafluoroethane) constants
const (
	R134aTtriple = 169.85 // [K]
	R134aTcrit   = 374.21 // [K]
)

// r134aSat holds rounded saturation properties of R134a. Reference state (IIR):
// h=200 kJ/kg and s=1 kJ/(kg·K) for saturated liquid at 0°C.
//   columns: θ [°C], hl [kJ/kg], hv [kJ/kg], sl [kJ/(kg·K)], sv [kJ/(kg·K)]
var r134aSat = [][5]float64{
	{-103.30, 71.46, 334.94, 0.4126, 1.9639},
	{-80, 99.16, 349.66, 0.5588, 1.8557},
	{-60, 123.36, 361.66, 0.6807, 1.7987},
	{-40, 148.14, 374.00, 0.7956, 1.7643},
	{-20, 173.64, 386.55, 0.9002, 1.7413},
	{0, 200.00, 398.60, 1.0000, 1.7271},
	{20, 227.47, 409.75, 1.0963, 1.7181},
	{40, 256.41, 419.43, 1.1905, 1.7111},
	{60, 287.50, 426.63, 1.2857, 1.7033},
	{80, 322.39, 429.59, 1.3883, 1.6919},
	{90, 341.00, 425.00, 1.4403, 1.6716},
	{100, 369.50, 407.00, 1.5177, 1.6182},
	{101.06, 389.64, 389.64, 1.5621, 1.5621},
}

// add fluid to database
func init() {
	allocators["r134a"] = newR134a
	allocators["r-134a"] = newR134a
}

// newR134a allocates the R134a table in SI units
func newR134a() Provider {
	return newTableC("R134a", r134aSat, R134aTtriple, R134aTcrit)
}
