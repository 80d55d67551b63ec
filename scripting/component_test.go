package scripting_test

import (
	"fmt"
	"testing"

	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/scripting"
	"github.com/plus3/alscript/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetComponentMissingCapability(t *testing.T) {
	fb := newFakeBridge()
	fb.add(7, "Crate", bridge.Transform)
	e := scripting.NewEntity(7, fb)

	assert.False(t, scripting.HasComponent[scripting.Rigidbody](e))
	fb.reset()

	rb := scripting.GetComponent[scripting.Rigidbody](e)

	assert.Nil(t, rb)
	assert.Equal(t, []string{"HasCapability(7,Rigidbody)"}, fb.calls)
}

func TestGetComponentBindsFreshAccessor(t *testing.T) {
	fb := newFakeBridge()
	fb.add(3, "Player", bridge.Transform, bridge.Rigidbody)
	e := scripting.NewEntity(3, fb)

	first := scripting.GetComponent[scripting.Rigidbody](e)
	second := scripting.GetComponent[scripting.Rigidbody](e)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
	assert.Equal(t, e, first.Entity())
	assert.Equal(t, bridge.Rigidbody, first.Capability())
	assert.Equal(t, []string{"HasCapability(3,Rigidbody)", "HasCapability(3,Rigidbody)"}, fb.calls)
}

func TestNilHandleNeverCallsBridge(t *testing.T) {
	fb := newFakeBridge()
	fb.add(1, "Ghost", bridge.Transform, bridge.Script)
	nilHandle := scripting.NewEntity(bridge.Nil, fb)

	assert.False(t, nilHandle.Valid())
	assert.False(t, nilHandle.Has(bridge.Transform))
	assert.False(t, scripting.HasComponent[scripting.Transform](nilHandle))
	assert.Nil(t, scripting.GetComponent[scripting.Script](nilHandle))
	assert.Nil(t, scripting.Accessor(nilHandle, bridge.Transform))
	assert.Empty(t, scripting.FindEntitiesByComponent[scripting.Script](nilHandle))
	assert.Equal(t, spatial.Vector3Zero, nilHandle.Position())
	nilHandle.SetPosition(spatial.NewVector3(1, 2, 3))

	_, ok := scripting.As[*fakeScript](nilHandle)
	assert.False(t, ok)

	assert.Empty(t, fb.calls)
}

func TestDetachedAccessorIsInert(t *testing.T) {
	var tr scripting.Transform
	var rb scripting.Rigidbody
	var sc scripting.Script
	var an scripting.Animator
	var bc scripting.BoxCollider

	assert.Equal(t, spatial.Vector3Zero, tr.Translation())
	assert.Equal(t, spatial.Identity, rb.Rotation())
	assert.Equal(t, 0, rb.TouchCount())
	assert.False(t, sc.Field("isOn"))
	assert.Nil(t, an.Animations())
	triggered, other := bc.IsTriggered()
	assert.False(t, triggered)
	assert.Empty(t, other)

	assert.NotPanics(t, func() {
		tr.SetRotation(spatial.NewVector3(1, 0, 0))
		rb.AddForce(spatial.NewVector3(0, 1, 0))
		sc.Activate()
		an.OnInverse()
	})
}

func TestAccessorTable(t *testing.T) {
	fb := newFakeBridge()
	fb.add(5, "Thing", bridge.Transform, bridge.Rigidbody, bridge.Script, bridge.Animator, bridge.BoxCollider, bridge.Light)
	e := scripting.NewEntity(5, fb)

	tests := []struct {
		tag  bridge.Capability
		want any
	}{
		{bridge.Transform, &scripting.Transform{}},
		{bridge.Rigidbody, &scripting.Rigidbody{}},
		{bridge.Script, &scripting.Script{}},
		{bridge.Animator, &scripting.Animator{}},
		{bridge.BoxCollider, &scripting.BoxCollider{}},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			c := scripting.Accessor(e, tt.tag)
			require.NotNil(t, c)
			assert.IsType(t, tt.want, c)
			assert.Equal(t, tt.tag, c.Capability())
			assert.Equal(t, e, c.Entity())
			assert.True(t, scripting.HasAccessor(tt.tag))
		})
	}

	t.Run("query only", func(t *testing.T) {
		assert.True(t, e.Has(bridge.Light))
		assert.Nil(t, scripting.Accessor(e, bridge.Light))
		assert.False(t, scripting.HasAccessor(bridge.Camera))
	})

	t.Run("absent", func(t *testing.T) {
		other := scripting.NewEntity(6, fb)
		assert.Nil(t, scripting.Accessor(other, bridge.Transform))
	})
}

func TestAccessorsForwardToBridge(t *testing.T) {
	fb := newFakeBridge()
	fb.add(9, "Door", bridge.Transform, bridge.Rigidbody, bridge.Script, bridge.Animator, bridge.BoxCollider)
	fb.touches[9] = 2
	fb.clips[9] = []string{"open"}
	fb.triggers[9] = "Player"
	e := scripting.NewEntity(9, fb)

	t.Run("transform", func(t *testing.T) {
		tr := scripting.GetComponent[scripting.Transform](e)
		tr.SetTranslation(spatial.NewVector3(1, 2, 3))
		tr.SetRotation(spatial.NewVector3(0, 3.14, 0))
		assert.Equal(t, spatial.NewVector3(1, 2, 3), tr.Translation())
		assert.Equal(t, spatial.NewVector3(0, 3.14, 0), tr.Rotation())
		assert.Equal(t, tr.Translation(), e.Position())
	})

	t.Run("rigidbody", func(t *testing.T) {
		rb := scripting.GetComponent[scripting.Rigidbody](e)
		q := spatial.FromAxisAngle(spatial.NewVector3(0, 1, 0), 1)
		rb.SetRotation(q)
		rb.SetPosition(spatial.NewVector3(4, 0, 0))
		rb.AddForce(spatial.NewVector3(0, 0, -1))
		rb.AddForce(spatial.NewVector3(0, 0, -1))

		assert.Equal(t, q, rb.Rotation())
		assert.Equal(t, spatial.NewVector3(4, 0, 0), rb.Position())
		assert.Equal(t, spatial.NewVector3(0, 0, -2), fb.forces[9])
		assert.Equal(t, 2, rb.TouchCount())
	})

	t.Run("script", func(t *testing.T) {
		sc := scripting.GetComponent[scripting.Script](e)
		sc.SetField("isOpen", true)
		assert.True(t, sc.Field("isOpen"))
		assert.False(t, sc.Field("missing"))

		sc.Deactivate()
		assert.False(t, fb.active[9])
		sc.Activate()
		assert.True(t, fb.active[9])
	})

	t.Run("animator", func(t *testing.T) {
		an := scripting.GetComponent[scripting.Animator](e)
		fb.reset()
		an.Run(0)
		an.SetRepeat(true, 0)
		an.OnInverse()
		an.OffInverse()
		assert.Equal(t, []string{"open"}, an.Animations())
		assert.Equal(t, []string{
			"RunAnimation(9,0)",
			"SetAnimationRepeat(9,true,0)",
			"SetAnimationInverse(9,true)",
			"SetAnimationInverse(9,false)",
			"AnimationNames(9)",
		}, fb.calls)
	})

	t.Run("box collider", func(t *testing.T) {
		bc := scripting.GetComponent[scripting.BoxCollider](e)
		triggered, other := bc.IsTriggered()
		assert.True(t, triggered)
		assert.Equal(t, "Player", other)
	})
}

func TestFindEntitiesByComponent(t *testing.T) {
	fb := newFakeBridge()
	fb.add(1, "A", bridge.Rigidbody)
	fb.add(2, "B", bridge.Transform)
	fb.add(3, "C", bridge.Rigidbody, bridge.Script)
	self := scripting.NewEntity(2, fb)

	bodies := scripting.FindEntitiesByComponent[scripting.Rigidbody](self)

	require.Len(t, bodies, 2)
	assert.Equal(t, bridge.EntityID(1), bodies[0].ID)
	assert.Equal(t, bridge.EntityID(3), bodies[1].ID)
	assert.Equal(t, fb, bodies[0].Bridge())
	assert.Nil(t, scripting.FindEntitiesByComponent[scripting.Animator](self))
}

func ExampleGetComponent() {
	fb := newFakeBridge()
	fb.add(42, "Player", bridge.Transform)
	player := scripting.NewEntity(42, fb)

	if tr := scripting.GetComponent[scripting.Transform](player); tr != nil {
		tr.SetTranslation(spatial.NewVector3(0, 1.5, 0))
		fmt.Println(tr.Translation())
	}
	fmt.Println(scripting.GetComponent[scripting.Rigidbody](player) == nil)
	// Output:
	// {0 1.5 0}
	// true
}
