// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// BoolP returns true with probability p.
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func BoolP(p float32, randOpt ...Rand) bool {
	var rnd Rand
	if len(randOpt) == 0 {
		rnd = NewGlobalRand()
	} else {
		rnd = randOpt[0]
	}
	return rnd.Float32() < p
}

// Sign returns -1 or +1 with equal probability.
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func Sign(randOpt ...Rand) float32 {
	if BoolP(0.5, randOpt...) {
		return -1
	}
	return 1
}
