// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package timer

// Peripheral base addresses.
const (
	clkBase    = 0x50000200
	timer0Base = 0x40010000
	timer1Base = 0x40010100
	timer2Base = 0x40110000
	timer3Base = 0x40110100
)

// Clock controller register offsets
const (
	rPWRCTL  = 0x00
	rAPBCLK  = 0x08
	rCLKSEL0 = 0x10
	rCLKSEL1 = 0x14
	rCLKSEL2 = 0x18
	rCLKDIV1 = 0x20
)

// Clock controller fields
const (
	pwrctlHIRC0FSELPos = 9
	clksel0HIRCSELPos  = 4

	tmrSelMsk = 0x7 // 3 bit clock source selector
	tmrDivMsk = 0xF // 4 bit clock divider

	apbclkTMR0CKENPos = 2 // TMR0CKEN..TMR3CKEN are consecutive
)

// Timer register offsets
const (
	rCTL    = 0x00
	rPRECNT = 0x04
	rCMP    = 0x08
	rINTEN  = 0x0C
	rINTSTS = 0x10
	rCNT    = 0x14
	rCAP    = 0x18
	rECTL   = 0x1C

	timerBlockSize = 0x20
)

// Timer control register bits
const (
	ctlCNTEN    = 1 << 0
	ctlWKEN     = 1 << 2
	ctlOPMODE   = 3 << 4
	ctlACTSTS   = 1 << 7
	ctlTRGSSEL  = 1 << 8
	ctlTRGPWM   = 1 << 9
	ctlTRGPDMA  = 1 << 10
	ctlTRGADC   = 1 << 11
	ctlEXTCNTEN = 1 << 12
	ctlCNTPHASE = 1 << 13
	ctlCAPEN    = 1 << 16
	ctlCAPFUNCS = 1 << 17
	ctlCAPEDGE  = 3 << 18
	ctlCAPCNTMD = 1 << 20
	ctlINTRTGEN = 1 << 24
	ctlINTRTGMD = 1 << 25
)

const (
	intenCNTIEN = 1 << 0
	intenCAPIEN = 1 << 1

	intstsCNTIF = 1 << 0
	intstsCAPIF = 1 << 1

	ectlEVNTDPCNTPos = 16
	ectlEVNTDPCNTMsk = 0xFF
)

// Counter limits
const (
	maxCount   = 0xFFFFFF // 24 bit counter
	minCompare = 2
)
