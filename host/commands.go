package host

import "github.com/plus3/alscript/bridge"

// Commands buffers structural changes made while scripts run so storage is
// only reshaped between frames.
type Commands struct {
	spawns   []spawnCommand
	destroys []bridge.EntityID
	attaches []attachCommand
	detaches []detachCommand
	defers   []func()
}

type spawnCommand struct {
	name       string
	components []Component
	done       func(bridge.EntityID)
}

type attachCommand struct {
	entity    bridge.EntityID
	component Component
}

type detachCommand struct {
	entity bridge.EntityID
	tag    bridge.Capability
}

// Defer queues fn to run after every other queued command.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues an entity spawn. done, if not nil, receives the new id.
func (c *Commands) Spawn(name string, done func(bridge.EntityID), components ...Component) {
	c.spawns = append(c.spawns, spawnCommand{name: name, components: components, done: done})
}

func (c *Commands) Destroy(id bridge.EntityID) {
	c.destroys = append(c.destroys, id)
}

func (c *Commands) Attach(id bridge.EntityID, comp Component) {
	c.attaches = append(c.attaches, attachCommand{entity: id, component: comp})
}

func (c *Commands) Detach(id bridge.EntityID, tag bridge.Capability) {
	c.detaches = append(c.detaches, detachCommand{entity: id, tag: tag})
}

// Pending reports how many commands are queued.
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.destroys) + len(c.attaches) + len(c.detaches) + len(c.defers)
}

// Flush applies the queued commands to s and resets the buffer. Destroys run
// first, then detaches, attaches, spawns and deferred functions. Commands
// aimed at an entity destroyed in the same flush are dropped. It returns the
// ids that were destroyed.
func (c *Commands) Flush(s *Storage) []bridge.EntityID {
	var destroyed []bridge.EntityID
	gone := make(map[bridge.EntityID]bool, len(c.destroys))

	for _, id := range c.destroys {
		if !gone[id] && s.Destroy(id) {
			destroyed = append(destroyed, id)
		}
		gone[id] = true
	}

	for _, cmd := range c.detaches {
		if !gone[cmd.entity] {
			s.Detach(cmd.entity, cmd.tag)
		}
	}

	for _, cmd := range c.attaches {
		if !gone[cmd.entity] {
			s.Attach(cmd.entity, cmd.component)
		}
	}

	for _, cmd := range c.spawns {
		id := s.Spawn(cmd.name, cmd.components...)
		if cmd.done != nil {
			cmd.done(id)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.destroys = c.destroys[:0]
	c.attaches = c.attaches[:0]
	c.detaches = c.detaches[:0]
	c.defers = c.defers[:0]
	return destroyed
}
