package cart

import (
	"github.com/Shinkhal/QuickEats/internal/user"
)

// AddItem 把一个菜品加入用户购物车（数量+1）。
func AddItem(userID, itemID string) (user.CartData, error) {
	u, err := user.FindByID(userID)
	if err != nil {
		return nil, err
	}

	items := u.CartItems()
	items[itemID]++
	if err := user.SaveCart(userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveItem 把一个菜品从用户购物车中减一，数量归零时删除该键。
// 购物车中本来就没有的菜品是no-op，不视为错误。
func RemoveItem(userID, itemID string) (user.CartData, error) {
	u, err := user.FindByID(userID)
	if err != nil {
		return nil, err
	}

	items := u.CartItems()
	if qty, ok := items[itemID]; ok {
		if qty <= 1 {
			delete(items, itemID)
		} else {
			items[itemID] = qty - 1
		}
		if err := user.SaveCart(userID, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// Items 返回用户当前的购物车映射。
func Items(userID string) (user.CartData, error) {
	u, err := user.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return u.CartItems(), nil
}
