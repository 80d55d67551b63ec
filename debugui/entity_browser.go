package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/engine"
)

// EntityBrowser lists entities with filtering, sorting and paging.
type EntityBrowser struct {
	rows          []EntityRow
	lastLen       int
	lastScripts   int
	selected      bridge.EntityID
	filterText    string
	sortColumn    int
	sortAscending bool
	perPage       int
	page          int
}

func NewEntityBrowser(perPage int) *EntityBrowser {
	return &EntityBrowser{sortAscending: true, perPage: perPage, lastLen: -1}
}

func (eb *EntityBrowser) Selected() bridge.EntityID {
	return eb.selected
}

func (eb *EntityBrowser) Select(id bridge.EntityID) {
	eb.selected = id
}

func (eb *EntityBrowser) Render(eng *engine.Engine) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.refresh(eng)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	storage := eng.Host().Storage()
	filtered := FilterRows(eb.rows, eb.filterText)
	visible, pages := Page(filtered, eb.page, eb.perPage)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", columnCount+1, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Script")
		imgui.TableSetupColumn("Capabilities")
		imgui.TableSetupColumn("Active")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			SortRows(eb.rows, eb.sortColumn, eb.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		for _, row := range visible {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.ID), eb.selected == row.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = row.ID
			}

			imgui.TableNextColumn()
			imgui.Text(row.Name)

			imgui.TableNextColumn()
			imgui.Text(row.Class)

			imgui.TableNextColumn()
			imgui.Text(row.Mask.String())

			imgui.TableNextColumn()
			if storage.Active(row.ID) {
				imgui.Text("yes")
			} else {
				imgui.Text("no")
			}
		}

		imgui.EndTable()
	}

	if pages > 1 {
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.page+1, pages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.page > 0 {
			eb.page--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.page < pages-1 {
			eb.page++
		}
	} else {
		eb.page = 0
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

// refresh rebuilds the row cache when entities or scripts came or went.
func (eb *EntityBrowser) refresh(eng *engine.Engine) {
	n, scripts := eng.Host().Storage().Len(), eng.ScriptCount()
	if eb.rows != nil && n == eb.lastLen && scripts == eb.lastScripts {
		return
	}
	eb.lastLen, eb.lastScripts = n, scripts
	eb.rows = Rows(eng)
	SortRows(eb.rows, eb.sortColumn, eb.sortAscending)

	if eb.selected != bridge.Nil && !eng.Host().Storage().Alive(eb.selected) {
		eb.selected = bridge.Nil
	}
}
