package config

import (
	"github.com/bernd/droplist/dropdown"
)

// Apply returns km with every non-empty override installed. Help text keeps
// the first configured key so footer hints stay accurate.
func (k KeysConfig) Apply(km dropdown.KeyMap) dropdown.KeyMap {
	if len(k.Next) > 0 {
		km.Next.SetKeys(k.Next...)
		km.Next.SetHelp(k.Next[0], "next")
	}
	if len(k.Prev) > 0 {
		km.Prev.SetKeys(k.Prev...)
		km.Prev.SetHelp(k.Prev[0], "prev")
	}
	if len(k.First) > 0 {
		km.First.SetKeys(k.First...)
		km.First.SetHelp(k.First[0], "first")
	}
	if len(k.Last) > 0 {
		km.Last.SetKeys(k.Last...)
		km.Last.SetHelp(k.Last[0], "last")
	}
	if len(k.Commit) > 0 {
		km.Commit.SetKeys(k.Commit...)
		km.Commit.SetHelp(k.Commit[0], "select")
	}
	if len(k.Dismiss) > 0 {
		km.Dismiss.SetKeys(k.Dismiss...)
		km.Dismiss.SetHelp(k.Dismiss[0], "close")
	}
	return km
}
