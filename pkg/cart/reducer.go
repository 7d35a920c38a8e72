package cart

import (
	"fmt"
	"slices"
	"time"
)

// Action is the tagged mutation protocol for the cart, one variant per
// operation. All variants are processed by Reduce.
type Action interface {
	isAction()
}

type AddItem struct {
	Item NewItem
}

type RemoveItem struct {
	Id string
}

type UpdateQuantity struct {
	Id       string
	Quantity int
}

type ClearCart struct{}

type ToggleCart struct{}

func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (ClearCart) isAction()      {}
func (ToggleCart) isAction()     {}

func newLineId(productId, variant string) string {
	return fmt.Sprintf("%s:%s:%d", productId, variant, time.Now().UnixNano())
}

// Reduce applies one action to the cart state and returns the next state.
// The incoming state is never mutated; the items slice is cloned before any
// change. Unknown line ids are no-ops, never errors.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case AddItem:
		items := slices.Clone(state.Items)
		variant := variantId(a.Item.BlouseOption)
		for i := range items {
			if items[i].ProductId == a.Item.ProductId && variantId(items[i].BlouseOption) == variant {
				items[i].Quantity += a.Item.Quantity
				return State{Items: items, IsOpen: true}
			}
		}
		items = append(items, LineItem{
			Id:            newLineId(a.Item.ProductId, variant),
			ProductId:     a.Item.ProductId,
			Name:          a.Item.Name,
			Price:         a.Item.Price,
			OriginalPrice: a.Item.OriginalPrice,
			Image:         a.Item.Image,
			Quantity:      a.Item.Quantity,
			BlouseOption:  a.Item.BlouseOption,
		})
		return State{Items: items, IsOpen: true}
	case RemoveItem:
		return State{Items: removeLine(state.Items, a.Id), IsOpen: state.IsOpen}
	case UpdateQuantity:
		if a.Quantity <= 0 {
			return State{Items: removeLine(state.Items, a.Id), IsOpen: state.IsOpen}
		}
		items := slices.Clone(state.Items)
		for i := range items {
			if items[i].Id == a.Id {
				items[i].Quantity = a.Quantity
				break
			}
		}
		return State{Items: items, IsOpen: state.IsOpen}
	case ClearCart:
		return State{Items: []LineItem{}, IsOpen: state.IsOpen}
	case ToggleCart:
		return State{Items: state.Items, IsOpen: !state.IsOpen}
	}
	return state
}

func removeLine(items []LineItem, id string) []LineItem {
	result := make([]LineItem, 0, len(items))
	for _, line := range items {
		if line.Id != id {
			result = append(result, line)
		}
	}
	return result
}
