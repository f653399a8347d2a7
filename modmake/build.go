package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	lfsrcryptVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	lfsrcrypt := NewAppBuild("lfsrcrypt", "cmd/lfsrcrypt", lfsrcryptVersion)
	lfsrcrypt.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", lfsrcryptVersion).
			Env("CGO_ENABLED", "0")
	})
	lfsrcrypt.Variant("windows", "amd64")
	lfsrcrypt.Variant("linux", "amd64")
	lfsrcrypt.Variant("linux", "arm64")
	lfsrcrypt.Variant("darwin", "amd64")
	lfsrcrypt.Variant("darwin", "arm64")
	b.ImportApp(lfsrcrypt)

	b.Execute()
}
