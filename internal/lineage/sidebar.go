// Package lineage builds the view model of the lineage editor's sidebar:
// the entity kinds a user can drag onto the canvas to add a node.
package lineage

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/matthewbaird/catalogview/internal/catalog"
	"github.com/matthewbaird/catalogview/internal/display"
	"github.com/matthewbaird/catalogview/internal/types"
)

// DragMIME is the data transfer type read by the canvas drop handler.
const DragMIME = "application/reactflow"

// DragEffect is the allowed drag effect of every sidebar item.
const DragEffect = "move"

// defaultSuffix tags the payload as a placeholder node of that kind.
const defaultSuffix = "-default"

// Item is one draggable entity kind.
type Item struct {
	Key       string       `json:"key"`
	Type      string       `json:"type"`
	Label     string       `json:"label"`
	Icon      display.Icon `json:"icon"`
	DragIcon  display.Icon `json:"dragIcon"`
	Payload   string       `json:"payload"`
	MIME      string       `json:"mime"`
	Effect    string       `json:"effect"`
	Draggable bool         `json:"draggable"`
}

// Sidebar is the lineage sidebar.
type Sidebar struct {
	Open  bool   `json:"open"`
	Items []Item `json:"items"`
}

// BuildSidebar returns one item per catalog entry, in catalog order. While a
// dropped node is still pending every item is disabled, so only one node can
// be added at a time. A node without an id is not pending.
func BuildSidebar(entries []catalog.LineageEntity, show bool, pending *types.Node) Sidebar {
	draggable := pending == nil || pending.ID == ""
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, Item{
			Key:       uuid.NewString(),
			Type:      e.Type,
			Label:     Label(e.Label),
			Icon:      display.EntityIcon(e.Type),
			DragIcon:  display.IconDragDotted,
			Payload:   Payload(e.Label),
			MIME:      DragMIME,
			Effect:    DragEffect,
			Draggable: draggable,
		})
	}
	return Sidebar{Open: show, Items: items}
}

// Label is the plural caption under an item: "table" becomes "Tables". Only
// the first rune is upper-cased, the rest of the caption is lower-cased.
func Label(label string) string {
	return capitalize(label + "s")
}

func capitalize(s string) string {
	_, n := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:n]) + cases.Lower(language.Und).String(s[n:])
}

// Payload is the drag payload of an entity kind.
func Payload(label string) string {
	return label + defaultSuffix
}
