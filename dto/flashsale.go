package dto

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ProductIDList normalise la liste de produits d'une vente flash.
// Les clients historiques envoient tantôt un tableau, tantôt un objet
// indexé; les deux formes sont acceptées et ramenées à une séquence de
// chaînes épurées, sans dédoublonnage. Les clés d'un objet sont
// parcourues en ordre trié pour garder un résultat stable.
type ProductIDList []string

// UnmarshalJSON implémente la coercition tableau-ou-objet.
func (p *ProductIDList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*p = nil
		return nil
	}

	var raw []interface{}
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	case '{':
		var obj map[string]interface{}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			raw = append(raw, obj[k])
		}
	default:
		return fmt.Errorf("productIds doit être un tableau ou un objet")
	}

	out := make(ProductIDList, 0, len(raw))
	for _, v := range raw {
		out = append(out, coerceID(v))
	}
	*p = out
	return nil
}

func coerceID(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", val))
	}
}

// CreateFlashSaleRequest est le DTO de création d'une vente flash.
type CreateFlashSaleRequest struct {
	Title           string        `json:"title" binding:"required"`
	Description     string        `json:"description"`
	Discount        *int          `json:"discount" binding:"required"`
	StartDate       *time.Time    `json:"startDate" binding:"required"`
	EndDate         *time.Time    `json:"endDate" binding:"required"`
	ProductIDs      ProductIDList `json:"productIds"`
	Order           *int          `json:"order"`
	BackgroundColor string        `json:"backgroundColor"`
	Icon            string        `json:"icon"`
	Emoji           string        `json:"emoji"`
}

// UpdateFlashSaleRequest est le DTO de mise à jour partielle : seuls les
// champs fournis remplacent l'existant.
type UpdateFlashSaleRequest struct {
	Title           *string        `json:"title"`
	Description     *string        `json:"description"`
	Discount        *int           `json:"discount"`
	StartDate       *time.Time     `json:"startDate"`
	EndDate         *time.Time     `json:"endDate"`
	ProductIDs      *ProductIDList `json:"productIds"`
	Order           *int           `json:"order"`
	BackgroundColor *string        `json:"backgroundColor"`
	Icon            *string        `json:"icon"`
	Emoji           *string        `json:"emoji"`
}
