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
	"github.com/ajroetker/go-crmath/poly"
)

// logTable holds, for each 7-bit mantissa prefix i, the reciprocal r_i of
// the interval midpoint rounded to 8 fractional bits, and -log(r_i) as a
// {hi, lo} pair. r_0 is 1 so inputs near 1 reduce without loss.
var logTable = [128][3]uint64{
	{0x3ff0000000000000, 0x0000000000000000, 0x0000000000000000},
	{0x3fefa00000000000, 0x3f882448a388a2aa, 0x3c104b16137f09a0},
	{0x3fef600000000000, 0x3f9432a925980cc1, 0xbc38cdaf39004192},
	{0x3fef200000000000, 0x3f9c63d2ec14aaf2, 0xbc3ce030a686bd86},
	{0x3feee00000000000, 0x3fa252f32f8d183f, 0xbc4947f792615916},
	{0x3feea00000000000, 0x3fa67c94f2d4bb58, 0x3c40413e6505e603},
	{0x3fee800000000000, 0x3fa894aa149fb343, 0x3c3a8be97660a23d},
	{0x3fee400000000000, 0x3faccb73cdddb2cc, 0xbc4e48fb0500efd4},
	{0x3fee000000000000, 0x3fb08598b59e3a07, 0xbc5dd7009902bf32},
	{0x3fedc00000000000, 0x3fb2aa04a44717a5, 0xbc5d15d38d2fa3f7},
	{0x3feda00000000000, 0x3fb3bdf5a7d1ee64, 0x3c47a976d3b5b45f},
	{0x3fed600000000000, 0x3fb5e95a4d9791cb, 0x3c5f38745c5c450a},
	{0x3fed200000000000, 0x3fb8197e2f40e3f0, 0x3c3b9f2dffbeed43},
	{0x3fed000000000000, 0x3fb9335e5d594989, 0xbc5478a85704ccb7},
	{0x3fecc00000000000, 0x3fbb6ac88dad5b1c, 0xbc40057eed1ca59f},
	{0x3fec800000000000, 0x3fbda727638446a2, 0x3c5401fa71733019},
	{0x3fec600000000000, 0x3fbec739830a1120, 0xbc4a2bf991780d3f},
	{0x3fec200000000000, 0x3fc08598b59e3a07, 0xbc6dd7009902bf32},
	{0x3fec000000000000, 0x3fc1178e8227e47c, 0xbc50e63a5f01c691},
	{0x3febc00000000000, 0x3fc23d712a49c202, 0xbc66e38161051d69},
	{0x3feba00000000000, 0x3fc2d1610c86813a, 0xbc5499a3f25af95f},
	{0x3feb600000000000, 0x3fc3fb45a59928cc, 0xbc6d87e6a354d056},
	{0x3feb400000000000, 0x3fc4913d8333b561, 0xbc50d5604930f135},
	{0x3feb000000000000, 0x3fc5bf406b543db2, 0xbc21f5b44c0df7e7},
	{0x3feae00000000000, 0x3fc6574ebe8c133a, 0xbc3d34f0f4621bed},
	{0x3feaa00000000000, 0x3fc7898d85444c73, 0x3c5ef8f6ebcfb201},
	{0x3fea800000000000, 0x3fc823c16551a3c2, 0xbc61232ce70be781},
	{0x3fea600000000000, 0x3fc8beafeb38fe8c, 0x3c555aa8b6997a40},
	{0x3fea200000000000, 0x3fc9f6c407089664, 0x3c435a19605e67ef},
	{0x3fea000000000000, 0x3fca93ed3c8ad9e3, 0x3c6bcafa9de97203},
	{0x3fe9e00000000000, 0x3fcb31d8575bce3d, 0xbc66353ab386a94d},
	{0x3fe9a00000000000, 0x3fcc6ffbc6f00f71, 0xbc68e58b2c57a4a5},
	{0x3fe9800000000000, 0x3fcd1037f2655e7b, 0x3c660629242471a2},
	{0x3fe9600000000000, 0x3fcdb13db0d48940, 0x3c5aa11d49f96cb9},
	{0x3fe9400000000000, 0x3fce530effe71012, 0x3c42276041f43042},
	{0x3fe9000000000000, 0x3fcf991c6cb3b379, 0x3c6f665066f980a2},
	{0x3fe8e00000000000, 0x3fd01eae5626c691, 0xbc418290bd2932e2},
	{0x3fe8c00000000000, 0x3fd07138604d5862, 0x3c7cdb16ed4e9138},
	{0x3fe8a00000000000, 0x3fd0c42d676162e3, 0x3c5162c79d5d11ee},
	{0x3fe8800000000000, 0x3fd1178e8227e47c, 0xbc60e63a5f01c691},
	{0x3fe8400000000000, 0x3fd1bf99635a6b95, 0xbc612aeb84249223},
	{0x3fe8200000000000, 0x3fd214456d0eb8d4, 0x3c6f7ae91aeba60a},
	{0x3fe8000000000000, 0x3fd269621134db92, 0x3c7e0efadd9db02b},
	{0x3fe7e00000000000, 0x3fd2bef07cdc9354, 0xbc782dad7fd86088},
	{0x3fe7c00000000000, 0x3fd314f1e1d35ce4, 0xbc73d69909e5c3dc},
	{0x3fe7a00000000000, 0x3fd36b6776be1117, 0xbc5324f0e883858e},
	{0x3fe7800000000000, 0x3fd3c25277333184, 0xbc72ad27e50a8ec6},
	{0x3fe7600000000000, 0x3fd419b423d5e8c7, 0x3c60dbb243827392},
	{0x3fe7400000000000, 0x3fd4718dc271c41b, 0x3c38fb4c14c56eef},
	{0x3fe7200000000000, 0x3fd4c9e09e172c3c, 0xbc5123615b147a5d},
	{0x3fe7000000000000, 0x3fd522ae0738a3d8, 0xbc68f7e9b38a6979},
	{0x3fe6e00000000000, 0x3fd57bf753c8d1fb, 0xbc60908d15f88b63},
	{0x3fe6c00000000000, 0x3fd5d5bddf595f30, 0xbc76541148cbb8a2},
	{0x3fe6a00000000000, 0x3fd630030b3aac49, 0x3c6dc18ce51fff99},
	{0x3fe6800000000000, 0x3fd68ac83e9c6a14, 0x3c5a64eadd740178},
	{0x3fe6600000000000, 0x3fd6e60ee6af1972, 0x3c5657c222d868cd},
	{0x3fe6400000000000, 0x3fd741d876c67bb1, 0x3c784a4ee3059583},
	{0x3fe6200000000000, 0x3fd79e26687cfb3e, 0xbc7c168817443f22},
	{0x3fe6000000000000, 0x3fd7fafa3bd8151c, 0xbc5219024acd3b77},
	{0x3fe5e00000000000, 0x3fd85855776dcbfb, 0xbc7486666443b153},
	{0x3fe5c00000000000, 0x3fd8b639a88b2df5, 0xbc770f2f38238303},
	{0x3fe5a00000000000, 0x3fd914a8635bf68a, 0xbc7ad4bb98c1f2c5},
	{0x3fe5800000000000, 0x3fd973a3431356ae, 0xbc689d2816cf838f},
	{0x3fe5600000000000, 0x3fd9d32bea15ed3b, 0x3c487bcbcfd3e187},
	{0x3fe5400000000000, 0x3fda33440224fa79, 0xbc6ba8062860ae23},
	{0x3fe5200000000000, 0x3fda93ed3c8ad9e3, 0x3c7bcafa9de97203},
	{0x3fe5000000000000, 0x3fdaf5295248cdd0, 0x3c79d56c45dd3e86},
	{0x3fe5000000000000, 0x3fdaf5295248cdd0, 0x3c79d56c45dd3e86},
	{0x3fe4e00000000000, 0x3fdb56fa04462909, 0x3c7494b610665378},
	{0x3fe4c00000000000, 0x3fdbb9611b80e2fb, 0x3c46fd02999b21e1},
	{0x3fe4a00000000000, 0x3fdc1c60693fa39e, 0xbc7bfc00b8f3feaa},
	{0x3fe4800000000000, 0x3fdc7ff9c74554c9, 0x3c6223eadb651b4a},
	{0x3fe4600000000000, 0x3fdce42f18064743, 0x3c70798270b29f39},
	{0x3fe4600000000000, 0x3fdce42f18064743, 0x3c70798270b29f39},
	{0x3fe4400000000000, 0x3fdd490246defa6b, 0x3c7d7f4d3b3d406b},
	{0x3fe4200000000000, 0x3fddae75484c9616, 0xbc70b5837185a661},
	{0x3fe4000000000000, 0x3fde148a1a2726ce, 0xbc7ac81cc8a4dfb8},
	{0x3fe3e00000000000, 0x3fde7b42c3ddad73, 0x3c757d646a17bc6a},
	{0x3fe3e00000000000, 0x3fde7b42c3ddad73, 0x3c757d646a17bc6a},
	{0x3fe3c00000000000, 0x3fdee2a156b413e5, 0xbc174b71fb5e57e3},
	{0x3fe3a00000000000, 0x3fdf4aa7ee03192d, 0xbc60d487f5aba5e5},
	{0x3fe3800000000000, 0x3fdfb358af7a4884, 0x3c67e8f05924d259},
	{0x3fe3800000000000, 0x3fdfb358af7a4884, 0x3c67e8f05924d259},
	{0x3fe3600000000000, 0x3fe00e5ae5b207ab, 0x3c61713a36138e19},
	{0x3fe3400000000000, 0x3fe04360be7603ad, 0xbc617f9e54e78104},
	{0x3fe3200000000000, 0x3fe078bf0533c568, 0x3c62241edf5fd1f7},
	{0x3fe3200000000000, 0x3fe078bf0533c568, 0x3c62241edf5fd1f7},
	{0x3fe3000000000000, 0x3fe0ae76e2d054fa, 0x3c80d710fcfc4e0d},
	{0x3fe2e00000000000, 0x3fe0e4898611cce1, 0x3c83300f002e836e},
	{0x3fe2e00000000000, 0x3fe0e4898611cce1, 0x3c83300f002e836e},
	{0x3fe2c00000000000, 0x3fe11af823c75aa8, 0xbc891eee7772c7c2},
	{0x3fe2a00000000000, 0x3fe151c3f6f29612, 0x3c7342eb628dba17},
	{0x3fe2a00000000000, 0x3fe151c3f6f29612, 0x3c7342eb628dba17},
	{0x3fe2800000000000, 0x3fe188ee40f23ca6, 0x3c889df1568ca0b0},
	{0x3fe2600000000000, 0x3fe1c07849ae6007, 0x3c759bddae1ccce2},
	{0x3fe2600000000000, 0x3fe1c07849ae6007, 0x3c759bddae1ccce2},
	{0x3fe2400000000000, 0x3fe1f8635fc61659, 0xbc72164ff40e9817},
	{0x3fe2200000000000, 0x3fe230b0d8bebc98, 0xbc6fcc8dbccc25cb},
	{0x3fe2200000000000, 0x3fe230b0d8bebc98, 0xbc6fcc8dbccc25cb},
	{0x3fe2000000000000, 0x3fe269621134db92, 0x3c8e0efadd9db02b},
	{0x3fe1e00000000000, 0x3fe2a2786d0ec107, 0xbc76a0c343be95dc},
	{0x3fe1e00000000000, 0x3fe2a2786d0ec107, 0xbc76a0c343be95dc},
	{0x3fe1c00000000000, 0x3fe2dbf557b0df43, 0xbc7b941ee770436b},
	{0x3fe1c00000000000, 0x3fe2dbf557b0df43, 0xbc7b941ee770436b},
	{0x3fe1a00000000000, 0x3fe315da4434068b, 0x3c66c3a5f12642c9},
	{0x3fe1800000000000, 0x3fe35028ad9d8c86, 0xbc7f01ab6065515c},
	{0x3fe1800000000000, 0x3fe35028ad9d8c86, 0xbc7f01ab6065515c},
	{0x3fe1600000000000, 0x3fe38ae2171976e7, 0x3c821512aa596ea3},
	{0x3fe1600000000000, 0x3fe38ae2171976e7, 0x3c821512aa596ea3},
	{0x3fe1400000000000, 0x3fe3c6080c36bfb5, 0x3c71930603d87b6e},
	{0x3fe1200000000000, 0x3fe4019c2125ca93, 0x3c686cf0f38b461a},
	{0x3fe1200000000000, 0x3fe4019c2125ca93, 0x3c686cf0f38b461a},
	{0x3fe1000000000000, 0x3fe43d9ff2f923c5, 0xbc784f481051f71a},
	{0x3fe1000000000000, 0x3fe43d9ff2f923c5, 0xbc784f481051f71a},
	{0x3fe0e00000000000, 0x3fe47a1527e8a2d3, 0x3c82541aca7d5844},
	{0x3fe0e00000000000, 0x3fe47a1527e8a2d3, 0x3c82541aca7d5844},
	{0x3fe0c00000000000, 0x3fe4b6fd6f970c1f, 0x3c8c457b531506f6},
	{0x3fe0a00000000000, 0x3fe4f45a835a4e19, 0x3c7d749362382a77},
	{0x3fe0a00000000000, 0x3fe4f45a835a4e19, 0x3c7d749362382a77},
	{0x3fe0800000000000, 0x3fe5322e26867857, 0x3c7988ba4aea614d},
	{0x3fe0800000000000, 0x3fe5322e26867857, 0x3c7988ba4aea614d},
	{0x3fe0600000000000, 0x3fe5707a26bb8c66, 0x3c880bff3303dd48},
	{0x3fe0600000000000, 0x3fe5707a26bb8c66, 0x3c880bff3303dd48},
	{0x3fe0400000000000, 0x3fe5af405c3649e0, 0xbc86714fbcd8135b},
	{0x3fe0400000000000, 0x3fe5af405c3649e0, 0xbc86714fbcd8135b},
	{0x3fe0200000000000, 0x3fe5ee82aa241920, 0x3c71c066d235ee63},
	{0x3fe0200000000000, 0x3fe5ee82aa241920, 0x3c71c066d235ee63},
	{0x3fe0000000000000, 0x3fe62e42fefa39ef, 0x3c7abc9e3b39803f},
}

var (
	logLn2Hi_f64 = math.Float64frombits(0x3fe62e42fefa3800) // 42 bits, so e*logLn2Hi is exact
	logLn2Lo_f64 = math.Float64frombits(0x3d2ef35793c76730)
)

// log1p(u) - u + u^2/2 = u^3 * P(u) for |u| < 2^-7.
var logP = []float64{1.0 / 3, -1.0 / 4, 1.0 / 5, -1.0 / 6, 1.0 / 7, -1.0 / 8, 1.0 / 9, -1.0 / 10}

// logDD returns log(x) as a double-double for positive finite normal x.
// The relative error is below 2^-90.
func logDD(x float64) dd.Pair {
	bx := math.Float64bits(x)
	e := float64(int64((bx>>52)&0x7ff) - 1023)
	mb := bx & (1<<52 - 1)
	m := math.Float64frombits(mb | 1023<<52)
	i := mb >> 45
	ent := logTable[i]

	// m*r is within 2^-7 of 1 and has at most 61 significant bits, so the
	// fused subtraction is exact.
	u := math.FMA(m, math.Float64frombits(ent[0]), -1)

	sq := dd.ExactMul(u, u).Scale(-0.5)
	s := dd.FastAdd(u, sq.Hi)
	s.Lo += sq.Lo
	t := u * u * u * poly.Horner(u, logP...)
	lp := dd.Pair{Hi: s.Hi, Lo: s.Lo + t}

	eh := dd.ExactMul(e, logLn2Hi_f64)
	eh.Lo = math.FMA(e, logLn2Lo_f64, eh.Lo)

	r := dd.Add(eh, dd.Pair{Hi: math.Float64frombits(ent[1]), Lo: math.Float64frombits(ent[2])})
	return dd.Add(r, lp)
}
