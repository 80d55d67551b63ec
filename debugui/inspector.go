package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/engine"
	"github.com/plus3/alscript/host"
)

// Inspector shows and edits the components and script fields of one entity.
// Field edits write straight into host storage; structural edits (duplicate,
// destroy, add and remove components) are queued on the engine and land at
// the end of the next frame.
type Inspector struct {
	// OnSelect is told about entities the inspector creates or removes.
	OnSelect func(bridge.EntityID)
}

func NewInspector() *Inspector {
	return &Inspector{}
}

func (in *Inspector) selectEntity(id bridge.EntityID) {
	if in.OnSelect != nil {
		in.OnSelect(id)
	}
}

func (in *Inspector) Render(eng *engine.Engine, id bridge.EntityID) {
	if !imgui.BeginV("Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	h := eng.Host()
	storage := h.Storage()
	if id == bridge.Nil {
		imgui.Text("No entity selected")
		return
	}
	if !storage.Alive(id) {
		imgui.Text(fmt.Sprintf("Entity %d no longer exists", id))
		return
	}

	imgui.Text(fmt.Sprintf("%s (%d)", storage.Name(id), id))
	mask := storage.Mask(id)
	imgui.Text(mask.String())

	active := storage.Active(id)
	if imgui.Checkbox("Active", &active) {
		storage.SetActive(id, active)
	}
	if imgui.Button("Duplicate") {
		eng.Spawn(storage.Name(id)+" copy", in.selectEntity, storage.CloneComponents(id)...)
	}
	imgui.SameLine()
	if imgui.Button("Destroy") {
		eng.Destroy(id)
		eng.Defer(func() { in.selectEntity(bridge.Nil) })
	}
	imgui.Separator()

	for _, c := range mask.Slice() {
		comp := storage.Component(id, c)
		if comp == nil {
			continue
		}
		open := imgui.TreeNodeStr(c.String())
		imgui.SameLine()
		if imgui.Button("Remove##" + c.String()) {
			eng.Detach(id, c)
		}
		if open {
			renderValue(reflect.ValueOf(comp).Elem())
			imgui.TreePop()
		}
	}

	if missing := AddableCapabilities(mask); len(missing) > 0 {
		imgui.Separator()
		imgui.Text("Add:")
		for _, c := range missing {
			imgui.SameLine()
			if imgui.Button(c.String() + "##add") {
				eng.Attach(id, host.NewComponent(c))
			}
		}
	}

	if class := eng.Class(id); class != "" && imgui.TreeNodeStr("Script: "+class) {
		renderScriptFields(h, id)
		imgui.TreePop()
	}
}

// AddableCapabilities lists the capabilities mask lacks that can be added
// with default values. Script is left out since it needs a class.
func AddableCapabilities(mask bridge.CapabilityMask) []bridge.Capability {
	var out []bridge.Capability
	for _, c := range bridge.Capabilities() {
		if c != bridge.Script && !mask.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// renderValue draws the exported fields of the struct v, which must be
// addressable so edits land in storage.
func renderValue(v reflect.Value) {
	for _, f := range fieldsOf.get(v.Type()) {
		renderField(f.Name, v.Field(f.Index))
	}
}

func renderField(name string, v reflect.Value) {
	label := "##" + name
	switch v.Kind() {
	case reflect.Bool:
		b := v.Bool()
		if imgui.Checkbox(name, &b) && v.CanSet() {
			v.SetBool(b)
		}

	case reflect.Float32, reflect.Float64:
		f := float32(v.Float())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(label, &f) && v.CanSet() {
			v.SetFloat(float64(f))
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := int32(v.Int())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &n) && v.CanSet() && !v.OverflowInt(int64(n)) {
			v.SetInt(int64(n))
		}

	case reflect.String:
		s := v.String()
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(label, "", &s, imgui.InputTextFlagsNone, nil) && v.CanSet() {
			v.SetString(s)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			renderValue(v)
			imgui.TreePop()
		}

	case reflect.Slice:
		if imgui.TreeNodeStr(fmt.Sprintf("%s [%d]", name, v.Len())) {
			for i := range v.Len() {
				renderField(fmt.Sprintf("%s[%d]", name, i), v.Index(i))
			}
			imgui.TreePop()
		}

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, v.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, v.Interface()))
	}
}

// renderScriptFields edits the exported fields of the bound behaviour
// through the host, which applies the same conversions as scene values.
func renderScriptFields(h *host.Host, id bridge.EntityID) {
	for _, f := range h.ScriptFields(id) {
		label := f.Key + "##script"
		switch v := f.Value.(type) {
		case bool:
			if imgui.Checkbox(label, &v) {
				_ = h.SetScriptField(id, f.Key, v)
			}
		case float32:
			imgui.SetNextItemWidth(150)
			if imgui.InputFloat(label, &v) {
				_ = h.SetScriptField(id, f.Key, v)
			}
		case float64:
			x := float32(v)
			imgui.SetNextItemWidth(150)
			if imgui.InputFloat(label, &x) {
				_ = h.SetScriptField(id, f.Key, float64(x))
			}
		case int:
			n := int32(v)
			imgui.SetNextItemWidth(150)
			if imgui.InputInt(label, &n) {
				_ = h.SetScriptField(id, f.Key, int(n))
			}
		case string:
			imgui.SetNextItemWidth(200)
			if imgui.InputTextWithHint(label, "", &v, imgui.InputTextFlagsNone, nil) {
				_ = h.SetScriptField(id, f.Key, v)
			}
		default:
			imgui.Text(fmt.Sprintf("%s: %v", f.Key, f.Value))
		}
	}
}
