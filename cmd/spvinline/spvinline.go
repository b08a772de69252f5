// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spvinline compiles the shader sources in a directory into
// SPIR-V and inlines the results into generated C++ source fragments.
package main

import (
	"cogentcore.org/spvinline/base/logx"
	"cogentcore.org/spvinline/cli"
	"cogentcore.org/spvinline/spvinline"
)

func main() {
	logx.SetDefaultLogger()
	opts := cli.DefaultOptions("spvinline", "compiles shaders into SPIR-V and inlines them into C++ source fragments.")
	opts.PrintSuccess = false
	cli.Run(opts, &spvinline.Config{},
		&cli.Cmd[*spvinline.Config]{Func: spvinline.Build, Name: "build", Doc: "compile all shaders and then inline all artifacts", Root: true},
		&cli.Cmd[*spvinline.Config]{Func: spvinline.Compile, Name: "compile", Doc: "compile all shaders into build/<name>.spv"},
		&cli.Cmd[*spvinline.Config]{Func: spvinline.Inline, Name: "inline", Doc: "write build/<name>.spv.inl for every artifact"},
	)
}
