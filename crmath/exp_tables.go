// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package crmath

import (
	"math"

	"github.com/ajroetker/go-crmath/dd"
)

// expT0 holds 2^(i/64) as {hi, lo} bit patterns.
var expT0 = [64][2]uint64{
	{0x3ff0000000000000, 0x0000000000000000}, // 2^(0/64)
	{0x3ff02c9a3e778061, 0xbc719083535b085d}, // 2^(1/64)
	{0x3ff059b0d3158574, 0x3c8d73e2a475b465}, // 2^(2/64)
	{0x3ff0874518759bc8, 0x3c6186be4bb284ff}, // 2^(3/64)
	{0x3ff0b5586cf9890f, 0x3c98a62e4adc610b}, // 2^(4/64)
	{0x3ff0e3ec32d3d1a2, 0x3c403a1727c57b53}, // 2^(5/64)
	{0x3ff11301d0125b51, 0xbc96c51039449b3a}, // 2^(6/64)
	{0x3ff1429aaea92de0, 0xbc932fbf9af1369e}, // 2^(7/64)
	{0x3ff172b83c7d517b, 0xbc819041b9d78a76}, // 2^(8/64)
	{0x3ff1a35beb6fcb75, 0x3c8e5b4c7b4968e4}, // 2^(9/64)
	{0x3ff1d4873168b9aa, 0x3c9e016e00a2643c}, // 2^(10/64)
	{0x3ff2063b88628cd6, 0x3c8dc775814a8495}, // 2^(11/64)
	{0x3ff2387a6e756238, 0x3c99b07eb6c70573}, // 2^(12/64)
	{0x3ff26b4565e27cdd, 0x3c82bd339940e9d9}, // 2^(13/64)
	{0x3ff29e9df51fdee1, 0x3c8612e8afad1255}, // 2^(14/64)
	{0x3ff2d285a6e4030b, 0x3c90024754db41d5}, // 2^(15/64)
	{0x3ff306fe0a31b715, 0x3c86f46ad23182e4}, // 2^(16/64)
	{0x3ff33c08b26416ff, 0x3c932721843659a6}, // 2^(17/64)
	{0x3ff371a7373aa9cb, 0xbc963aeabf42eae2}, // 2^(18/64)
	{0x3ff3a7db34e59ff7, 0xbc75e436d661f5e3}, // 2^(19/64)
	{0x3ff3dea64c123422, 0x3c8ada0911f09ebc}, // 2^(20/64)
	{0x3ff4160a21f72e2a, 0xbc5ef3691c309278}, // 2^(21/64)
	{0x3ff44e086061892d, 0x3c489b7a04ef80d0}, // 2^(22/64)
	{0x3ff486a2b5c13cd0, 0x3c73c1a3b69062f0}, // 2^(23/64)
	{0x3ff4bfdad5362a27, 0x3c7d4397afec42e2}, // 2^(24/64)
	{0x3ff4f9b2769d2ca7, 0xbc94b309d25957e3}, // 2^(25/64)
	{0x3ff5342b569d4f82, 0xbc807abe1db13cad}, // 2^(26/64)
	{0x3ff56f4736b527da, 0x3c99bb2c011d93ad}, // 2^(27/64)
	{0x3ff5ab07dd485429, 0x3c96324c054647ad}, // 2^(28/64)
	{0x3ff5e76f15ad2148, 0x3c9ba6f93080e65e}, // 2^(29/64)
	{0x3ff6247eb03a5585, 0xbc9383c17e40b497}, // 2^(30/64)
	{0x3ff6623882552225, 0xbc9bb60987591c34}, // 2^(31/64)
	{0x3ff6a09e667f3bcd, 0xbc9bdd3413b26456}, // 2^(32/64)
	{0x3ff6dfb23c651a2f, 0xbc6bbe3a683c88ab}, // 2^(33/64)
	{0x3ff71f75e8ec5f74, 0xbc816e4786887a99}, // 2^(34/64)
	{0x3ff75feb564267c9, 0xbc90245957316dd3}, // 2^(35/64)
	{0x3ff7a11473eb0187, 0xbc841577ee04992f}, // 2^(36/64)
	{0x3ff7e2f336cf4e62, 0x3c705d02ba15797e}, // 2^(37/64)
	{0x3ff82589994cce13, 0xbc9d4c1dd41532d8}, // 2^(38/64)
	{0x3ff868d99b4492ed, 0xbc9fc6f89bd4f6ba}, // 2^(39/64)
	{0x3ff8ace5422aa0db, 0x3c96e9f156864b27}, // 2^(40/64)
	{0x3ff8f1ae99157736, 0x3c85cc13a2e3976c}, // 2^(41/64)
	{0x3ff93737b0cdc5e5, 0xbc675fc781b57ebc}, // 2^(42/64)
	{0x3ff97d829fde4e50, 0xbc9d185b7c1b85d1}, // 2^(43/64)
	{0x3ff9c49182a3f090, 0x3c7c7c46b071f2be}, // 2^(44/64)
	{0x3ffa0c667b5de565, 0xbc9359495d1cd533}, // 2^(45/64)
	{0x3ffa5503b23e255d, 0xbc9d2f6edb8d41e1}, // 2^(46/64)
	{0x3ffa9e6b5579fdbf, 0x3c90fac90ef7fd31}, // 2^(47/64)
	{0x3ffae89f995ad3ad, 0x3c97a1cd345dcc81}, // 2^(48/64)
	{0x3ffb33a2b84f15fb, 0xbc62805e3084d708}, // 2^(49/64)
	{0x3ffb7f76f2fb5e47, 0xbc75584f7e54ac3b}, // 2^(50/64)
	{0x3ffbcc1e904bc1d2, 0x3c823dd07a2d9e84}, // 2^(51/64)
	{0x3ffc199bdd85529c, 0x3c811065895048dd}, // 2^(52/64)
	{0x3ffc67f12e57d14b, 0x3c92884dff483cad}, // 2^(53/64)
	{0x3ffcb720dcef9069, 0x3c7503cbd1e949db}, // 2^(54/64)
	{0x3ffd072d4a07897c, 0xbc9cbc3743797a9c}, // 2^(55/64)
	{0x3ffd5818dcfba487, 0x3c82ed02d75b3707}, // 2^(56/64)
	{0x3ffda9e603db3285, 0x3c9c2300696db532}, // 2^(57/64)
	{0x3ffdfc97337b9b5f, 0xbc91a5cd4f184b5c}, // 2^(58/64)
	{0x3ffe502ee78b3ff6, 0x3c839e8980a9cc8f}, // 2^(59/64)
	{0x3ffea4afa2a490da, 0xbc9e9c23179c2893}, // 2^(60/64)
	{0x3ffefa1bee615a27, 0x3c9dc7f486a4b6b0}, // 2^(61/64)
	{0x3fff50765b6e4540, 0x3c99d3e12dd8a18b}, // 2^(62/64)
	{0x3fffa7c1819e90d8, 0x3c874853f3a5931e}, // 2^(63/64)
}

// expT1 holds 2^(i/4096) as {hi, lo} bit patterns.
var expT1 = [64][2]uint64{
	{0x3ff0000000000000, 0x0000000000000000}, // 2^(0/4096)
	{0x3ff000b175effdc7, 0x3c9ae8e38c59c72a}, // 2^(1/4096)
	{0x3ff00162f3904052, 0xbc57b5d0d58ea8f4}, // 2^(2/4096)
	{0x3ff0021478e11ce6, 0x3c94115cb6b16a8e}, // 2^(3/4096)
	{0x3ff002c605e2e8cf, 0xbc8d7c96f201bb2f}, // 2^(4/4096)
	{0x3ff003779a95f959, 0x3c984711d4c35e9f}, // 2^(5/4096)
	{0x3ff0042936faa3d8, 0xbc80484245243777}, // 2^(6/4096)
	{0x3ff004dadb113da0, 0xbc94b237da2025f9}, // 2^(7/4096)
	{0x3ff0058c86da1c0a, 0xbc75e00e62d6b30d}, // 2^(8/4096)
	{0x3ff0063e3a559473, 0x3c9a1d6cedbb9481}, // 2^(9/4096)
	{0x3ff006eff583fc3d, 0xbc94acf197a00142}, // 2^(10/4096)
	{0x3ff007a1b865a8ca, 0xbc6eaf2ea42391a5}, // 2^(11/4096)
	{0x3ff0085382faef83, 0x3c7da93f90835f75}, // 2^(12/4096)
	{0x3ff00905554425d4, 0xbc86a79084ab093c}, // 2^(13/4096)
	{0x3ff009b72f41a12b, 0x3c986364f8fbe8f8}, // 2^(14/4096)
	{0x3ff00a6910f3b6fd, 0xbc882e8e14e3110e}, // 2^(15/4096)
	{0x3ff00b1afa5abcbf, 0xbc84f6b2a7609f71}, // 2^(16/4096)
	{0x3ff00bcceb7707ec, 0xbc7e1a258ea8f71b}, // 2^(17/4096)
	{0x3ff00c7ee448ee02, 0x3c74362ca5bc26f1}, // 2^(18/4096)
	{0x3ff00d30e4d0c483, 0x3c9095a56c919d02}, // 2^(19/4096)
	{0x3ff00de2ed0ee0f5, 0xbc6406ac4e81a645}, // 2^(20/4096)
	{0x3ff00e94fd0398e0, 0x3c9b5a6902767e09}, // 2^(21/4096)
	{0x3ff00f4714af41d3, 0xbc991b2060859321}, // 2^(22/4096)
	{0x3ff00ff93412315c, 0x3c8427068ab22306}, // 2^(23/4096)
	{0x3ff010ab5b2cbd11, 0x3c9c1d0660524e08}, // 2^(24/4096)
	{0x3ff0115d89ff3a8b, 0xbc9e7bdfb3204be8}, // 2^(25/4096)
	{0x3ff0120fc089ff63, 0x3c8843aa8b9cbbc6}, // 2^(26/4096)
	{0x3ff012c1fecd613b, 0xbc734104ee7edae9}, // 2^(27/4096)
	{0x3ff0137444c9b5b5, 0xbc72b6aeb6176892}, // 2^(28/4096)
	{0x3ff01426927f5278, 0x3c7a8cd33b8a1bb3}, // 2^(29/4096)
	{0x3ff014d8e7ee8d2f, 0x3c72edc08e5da99a}, // 2^(30/4096)
	{0x3ff0158b4517bb88, 0x3c857ba2dc7e0c73}, // 2^(31/4096)
	{0x3ff0163da9fb3335, 0x3c9b61299ab8cdb7}, // 2^(32/4096)
	{0x3ff016f0169949ed, 0xbc990565902c5f44}, // 2^(33/4096)
	{0x3ff017a28af25567, 0x3c870fc41c5c2d53}, // 2^(34/4096)
	{0x3ff018550706ab62, 0x3c94b9a6e145d76c}, // 2^(35/4096)
	{0x3ff019078ad6a19f, 0xbc7008eff5142bf9}, // 2^(36/4096)
	{0x3ff019ba16628de2, 0xbc977669f033c7de}, // 2^(37/4096)
	{0x3ff01a6ca9aac5f3, 0xbc909bb78eeead0a}, // 2^(38/4096)
	{0x3ff01b1f44af9f9e, 0x3c9371231477ece5}, // 2^(39/4096)
	{0x3ff01bd1e77170b4, 0x3c75e7626621eb5b}, // 2^(40/4096)
	{0x3ff01c8491f08f08, 0xbc9bc72b100828a5}, // 2^(41/4096)
	{0x3ff01d37442d5070, 0xbc6ce39cbbab8bbe}, // 2^(42/4096)
	{0x3ff01de9fe280ac8, 0x3c816996709da2e2}, // 2^(43/4096)
	{0x3ff01e9cbfe113ef, 0xbc8c11f5239bf535}, // 2^(44/4096)
	{0x3ff01f4f8958c1c6, 0x3c8e1d4eb5edc6b3}, // 2^(45/4096)
	{0x3ff020025a8f6a35, 0xbc9afb99946ee3f0}, // 2^(46/4096)
	{0x3ff020b533856324, 0xbc98f06d8a148a32}, // 2^(47/4096)
	{0x3ff02168143b0281, 0xbc82bf310fc54eb6}, // 2^(48/4096)
	{0x3ff0221afcb09e3e, 0xbc9c95a035eb4175}, // 2^(49/4096)
	{0x3ff022cdece68c4f, 0xbc9491793e46834d}, // 2^(50/4096)
	{0x3ff02380e4dd22ad, 0xbc73e8d0d9c49091}, // 2^(51/4096)
	{0x3ff02433e494b755, 0xbc9314aa16278aa3}, // 2^(52/4096)
	{0x3ff024e6ec0da046, 0x3c848daf888e9651}, // 2^(53/4096)
	{0x3ff02599fb483385, 0x3c856dc8046821f4}, // 2^(54/4096)
	{0x3ff0264d1244c719, 0x3c945b42356b9d47}, // 2^(55/4096)
	{0x3ff027003103b10e, 0xbc7082ef51b61d7e}, // 2^(56/4096)
	{0x3ff027b357854772, 0x3c72106ed0920a34}, // 2^(57/4096)
	{0x3ff0286685c9e059, 0xbc9fd4cf26ea5d0f}, // 2^(58/4096)
	{0x3ff02919bbd1d1d8, 0xbc909f8775e78084}, // 2^(59/4096)
	{0x3ff029ccf99d720a, 0x3c564cbba902ca27}, // 2^(60/4096)
	{0x3ff02a803f2d170d, 0x3c94383ef231d207}, // 2^(61/4096)
	{0x3ff02b338c811703, 0x3c94a47a505b3a47}, // 2^(62/4096)
	{0x3ff02be6e199c811, 0x3c9e47120223467f}, // 2^(63/4096)
}

// exp2Mid holds 2^(i/32) rounded to float64. The single-precision
// exponentials add the integer part of the exponent to these bits.
var exp2Mid = [32]uint64{
	0x3ff0000000000000, // 2^(0/32)
	0x3ff059b0d3158574, // 2^(1/32)
	0x3ff0b5586cf9890f, // 2^(2/32)
	0x3ff11301d0125b51, // 2^(3/32)
	0x3ff172b83c7d517b, // 2^(4/32)
	0x3ff1d4873168b9aa, // 2^(5/32)
	0x3ff2387a6e756238, // 2^(6/32)
	0x3ff29e9df51fdee1, // 2^(7/32)
	0x3ff306fe0a31b715, // 2^(8/32)
	0x3ff371a7373aa9cb, // 2^(9/32)
	0x3ff3dea64c123422, // 2^(10/32)
	0x3ff44e086061892d, // 2^(11/32)
	0x3ff4bfdad5362a27, // 2^(12/32)
	0x3ff5342b569d4f82, // 2^(13/32)
	0x3ff5ab07dd485429, // 2^(14/32)
	0x3ff6247eb03a5585, // 2^(15/32)
	0x3ff6a09e667f3bcd, // 2^(16/32)
	0x3ff71f75e8ec5f74, // 2^(17/32)
	0x3ff7a11473eb0187, // 2^(18/32)
	0x3ff82589994cce13, // 2^(19/32)
	0x3ff8ace5422aa0db, // 2^(20/32)
	0x3ff93737b0cdc5e5, // 2^(21/32)
	0x3ff9c49182a3f090, // 2^(22/32)
	0x3ffa5503b23e255d, // 2^(23/32)
	0x3ffae89f995ad3ad, // 2^(24/32)
	0x3ffb7f76f2fb5e47, // 2^(25/32)
	0x3ffc199bdd85529c, // 2^(26/32)
	0x3ffcb720dcef9069, // 2^(27/32)
	0x3ffd5818dcfba487, // 2^(28/32)
	0x3ffdfc97337b9b5f, // 2^(29/32)
	0x3ffea4afa2a490da, // 2^(30/32)
	0x3fff50765b6e4540, // 2^(31/32)
}

// expIndex splits a scaled reduction index k = round(x*4096) into the
// coarse index, the fine index and the power-of-two exponent.
func expIndex(k int64) (i0, i1 int, ie int64) {
	return int((k >> 6) & 63), int(k & 63), k >> 12
}

// expBase returns 2^((k mod 4096)/4096) from the two tables with the
// unnormalized product used by the fast paths.
func expBase(k int64) dd.Pair {
	i0, i1, _ := expIndex(k)
	return dd.QuickMult(dd.FromBits(expT0[i0]), dd.FromBits(expT1[i1]))
}

// expBaseAccurate is expBase with a normalized product.
func expBaseAccurate(k int64) dd.Pair {
	i0, i1, _ := expIndex(k)
	return dd.Mult(dd.FromBits(expT0[i0]), dd.FromBits(expT1[i1]))
}

// exp2MidScaled returns 2^(k/32) for the single-precision exponentials. The
// exponent is added to the table bits directly; callers keep k in a range
// where the result stays normal.
func exp2MidScaled(k int64) float64 {
	return math.Float64frombits(exp2Mid[k&31] + uint64(k>>5)<<52)
}
