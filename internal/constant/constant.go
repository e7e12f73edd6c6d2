// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package constant holds build metadata set with -ldflags.
package constant

var (
	Version     = "dev"
	CompileTime = "unknown"
)
