package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validCreate() CreateMenuItemRequest {
	return CreateMenuItemRequest{
		Name:        "Regular Veg Thali",
		Description: "Dal, Seasonal Veg, 2 Roti, Rice",
		Price:       120,
		Category:    "Thali",
		ImageURL:    "https://example.com/thali.jpg",
	}
}

func TestCreateValid(t *testing.T) {
	req := validCreate()
	require.Nil(t, Struct(&req))
}

func TestCreateRejectsZeroPrice(t *testing.T) {
	req := validCreate()
	req.Price = 0

	fields := Struct(&req)
	require.Contains(t, fields, "price")
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	req := validCreate()
	req.Category = "Pizza"

	fields := Struct(&req)
	require.Contains(t, fields, "category")
}

func TestCreateReportsPerField(t *testing.T) {
	req := CreateMenuItemRequest{}

	fields := Struct(&req)
	for _, f := range []string{"name", "description", "price", "category", "imageUrl"} {
		require.Contains(t, fields, f)
	}
}

func TestPatchPartialIsValid(t *testing.T) {
	price := int64(150)
	req := PatchMenuItemRequest{Price: &price}
	require.Nil(t, Struct(&req))

	require.Nil(t, Struct(&PatchMenuItemRequest{}))
}

func TestPatchRejectsBadValues(t *testing.T) {
	zero := int64(0)
	empty := ""
	bad := "Pizza"
	req := PatchMenuItemRequest{Price: &zero, Name: &empty, Category: &bad}

	fields := Struct(&req)
	require.Contains(t, fields, "price")
	require.Contains(t, fields, "name")
	require.Contains(t, fields, "category")
}
