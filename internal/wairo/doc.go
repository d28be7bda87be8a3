// Package wairo is a catalog of traditional Japanese colors grouped by hue
// family.
//
// Each color is reachable through its family namespace, mirroring how the
// colors are usually organized:
//
//	c := wairo.RedFamily.Aka() // 赤, RGBA (237, 26, 61, 255)
//
// or through the flat table with Lookup("RedFamily.Aka"). Colors are
// normalized to [0, 1] and never change. The table is generated from
// catalog.yaml; edit that file and regenerate instead of touching
// catalog_gen.go.
package wairo

//go:generate go run ../../cmd/wairogen --in catalog.yaml --out catalog_gen.go
