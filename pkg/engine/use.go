package engine

import (
	"github.com/jwebster45206/breadcrumb/pkg/state"
	"github.com/jwebster45206/breadcrumb/pkg/world"
)

// use dispatches to the fixture handler for the current room's usable. The
// optional item argument is resolved against the inventory; an argument
// that resolves to nothing fails before any handler runs.
func (e *Engine) use(sess *state.Session, itemArg string) Result {
	room := e.world.Rooms[sess.CurrentRoom]
	if room.Usable == nil {
		return Result{Output: "Nothing to use here.", State: sess}
	}

	var itemID string
	if itemArg != "" {
		itemID = e.resolveItem(sess, itemArg)
		if itemID == "" {
			return Result{Output: "You do not have that item.", State: sess}
		}
	}

	u := room.Usable
	status, ok := sess.UsableState[u.ID]
	if !ok {
		status = state.UsableStatus{Locked: u.Locked}
	}

	switch u.Type {
	case world.TypeChest:
		return e.useChest(sess, u, status, itemID)
	case world.TypeButton:
		return e.useButton(sess, u, status)
	case world.TypeDoor:
		return e.useDoor(sess, u, status, itemID)
	}

	return Result{Output: "Nothing happens.", State: sess}
}

func (e *Engine) useChest(sess *state.Session, u *world.Usable, status state.UsableStatus, itemID string) Result {
	if status.Locked {
		if itemID != "" && itemID == u.RequiresItem {
			status.Locked = false
			return e.openChest(sess, u, status)
		}
		return Result{Output: e.lockedMessage(u, u.MessageLocked, "The chest is locked."), State: sess}
	}

	if status.Used {
		return Result{Output: "The chest is empty.", State: sess}
	}

	return e.openChest(sess, u, status)
}

// openChest marks the chest used and grants its configured item.
func (e *Engine) openChest(sess *state.Session, u *world.Usable, status state.UsableStatus) Result {
	status.Used = true
	sess.UsableState[u.ID] = status
	sess.StepCount++

	msg := "You open the chest."
	var grant string
	if u.OnUnlock != nil {
		if u.OnUnlock.Message != "" {
			msg = u.OnUnlock.Message
		}
		grant = u.OnUnlock.GrantItem
	}

	if grant != "" {
		sess.Inventory = append(sess.Inventory, grant)
		if e.world.Fair(world.FairAutoDescribeItemsOnAcquire) {
			msg += "\n" + e.world.Items[grant].Description
		}
	}

	return Result{Output: msg + "\n\n" + RenderRoom(e.world, sess), State: sess, Changed: true}
}

func (e *Engine) useButton(sess *state.Session, u *world.Usable, status state.UsableStatus) Result {
	if status.Used {
		return Result{Output: "Nothing else happens.", State: sess}
	}

	status.Used = true
	sess.UsableState[u.ID] = status
	sess.StepCount++

	if u.RevealsItem != "" {
		sess.ItemVisibility[u.RevealsItem] = true
	}

	msg := u.Message
	if msg == "" {
		msg = "You press the button."
	}
	return Result{Output: msg + "\n\n" + RenderRoom(e.world, sess), State: sess, Changed: true}
}

func (e *Engine) useDoor(sess *state.Session, u *world.Usable, status state.UsableStatus, itemID string) Result {
	if !status.Locked {
		return Result{Output: "The door stands open.", State: sess}
	}

	if itemID == "" || itemID != u.RequiresItem {
		return Result{Output: e.lockedMessage(u, u.MessageLocked, "The door is locked."), State: sess}
	}

	status.Locked = false
	status.Used = true
	sess.UsableState[u.ID] = status
	sess.StepCount++

	// Validated doors always carry a reveals_exit.
	sess.RevealExit(sess.CurrentRoom, u.RevealsExit.Direction, u.RevealsExit.ToRoom)

	msg := u.MessageUnlocked
	if msg == "" {
		msg = "The door unlocks."
	}
	return Result{Output: msg + "\n\n" + RenderRoom(e.world, sess), State: sess, Changed: true}
}

// lockedMessage optionally names the required item, gated by the
// reveal_required_item_name fairness option.
func (e *Engine) lockedMessage(u *world.Usable, configured, fallback string) string {
	msg := configured
	if msg == "" {
		msg = fallback
	}
	if e.world.Fair(world.FairRevealRequiredItemName) && u.RequiresItem != "" {
		msg += " It seems to need " + e.world.Items[u.RequiresItem].Name + "."
	}
	return msg
}
