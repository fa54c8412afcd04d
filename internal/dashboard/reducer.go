package dashboard

import (
	"strings"

	"kitchenctl/internal/kitchen"

	"github.com/google/uuid"
)

// Action is an operator intent applied by Reduce.
type Action interface {
	isAction()
}

type (
	SelectSection struct{ Name Section }
	AcceptOrder   struct{ ID int }
	RejectOrder   struct{ ID int }

	SetInventoryQuantity struct {
		ID       int
		Quantity int
	}

	SetChatDraft    struct{ Text string }
	SendChatMessage struct{ Text string }
	ToggleDarkMode  struct{}

	Notify struct {
		Text string
		Kind NotificationKind
	}

	DismissNotification struct{ ID uuid.UUID }
)

func (SelectSection) isAction()        {}
func (AcceptOrder) isAction()          {}
func (RejectOrder) isAction()          {}
func (SetInventoryQuantity) isAction() {}
func (SetChatDraft) isAction()         {}
func (SendChatMessage) isAction()      {}
func (ToggleDarkMode) isAction()       {}
func (Notify) isAction()               {}
func (DismissNotification) isAction()  {}

// Reduce applies a to s and returns the next state together with any
// effects the runtime has to carry out. It never fails; unknown ids and
// empty input leave the state as it was.
func Reduce(env Env, s State, a Action) (State, []Effect) {
	switch a := a.(type) {
	case SelectSection:
		s.Section = a.Name
		return s, nil

	case AcceptOrder:
		s.Orders = setOrderStatus(s.Orders, a.ID, kitchen.OrderCompleted)
		return s, nil

	case RejectOrder:
		s.Orders = setOrderStatus(s.Orders, a.ID, kitchen.OrderRejected)
		return s, nil

	case SetInventoryQuantity:
		if a.Quantity < 0 {
			return s, nil
		}
		s.Inventory = setQuantity(s.Inventory, a.ID, a.Quantity)
		return s, nil

	case SetChatDraft:
		s.ChatDraft = a.Text
		return s, nil

	case SendChatMessage:
		if strings.TrimSpace(a.Text) == "" {
			return s, nil
		}
		msg := kitchen.ChatMessage{
			ID:     env.newID(),
			Sender: s.Operator,
			Text:   a.Text,
			SentAt: env.now(),
		}
		chat := make([]kitchen.ChatMessage, len(s.Chat), len(s.Chat)+1)
		copy(chat, s.Chat)
		s.Chat = append(chat, msg)
		s.ChatDraft = ""
		return notify(env, s, ChatSentMessage, NotifySuccess)

	case ToggleDarkMode:
		s.DarkMode = !s.DarkMode
		return s, nil

	case Notify:
		return notify(env, s, a.Text, a.Kind)

	case DismissNotification:
		return dismiss(s, a.ID), nil
	}

	return s, nil
}

func setOrderStatus(orders []kitchen.Order, id int, status kitchen.OrderStatus) []kitchen.Order {
	idx := -1
	for i, o := range orders {
		if o.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return orders
	}
	next := make([]kitchen.Order, len(orders))
	copy(next, orders)
	next[idx].Status = status
	return next
}

func setQuantity(items []kitchen.InventoryItem, id, quantity int) []kitchen.InventoryItem {
	idx := -1
	for i, item := range items {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return items
	}
	next := make([]kitchen.InventoryItem, len(items))
	copy(next, items)
	next[idx].Quantity = quantity
	return next
}
