package xlsxgen

import (
	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/models"
	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/random"
)

// NameLength is the length of generated user names.
const NameLength = 20

// Sheet names of the built-in datasets.
const (
	BalanceSheet  = "Balance"
	UserInfoSheet = "UserInfo"
)

func idValue(_ *random.Source, id int) interface{} {
	return id
}

// BalanceDataset returns the (ID, balance) dataset.
func BalanceDataset() models.Dataset {
	return models.Dataset{
		Name: BalanceSheet,
		Columns: []models.Column{
			{Header: "ID", Width: 10, Value: idValue},
			{Header: "餘額", Width: 14, Value: func(src *random.Source, _ int) interface{} {
				return src.Balance()
			}},
		},
	}
}

// UserInfoDataset returns the (ID, name, email) dataset.
func UserInfoDataset() models.Dataset {
	return models.Dataset{
		Name: UserInfoSheet,
		Columns: []models.Column{
			{Header: "ID", Width: 10, Value: idValue},
			{Header: "姓名", Width: 24, Value: func(src *random.Source, _ int) interface{} {
				return src.String(NameLength)
			}},
			{Header: "Email", Width: 26, Value: func(src *random.Source, _ int) interface{} {
				return src.Email()
			}},
		},
	}
}
