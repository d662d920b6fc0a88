// Package i18n resolves display strings by key and locale. A miss is
// non-fatal: unresolved keys fall back to the English table, then to the
// key itself, so raw user input passed through Lookup comes back unchanged.
package i18n

// Supported locales.
const (
	LocaleEN = "en"
	LocaleZH = "zh"
)

var en = map[string]string{
	"templateRetail":     "Retail Store",
	"templateRestaurant": "Restaurant",
	"templateHotel":      "Hotel",
	"templateMedical":    "Medical Clinic",
	"templateInvoice":    "Service Invoice",
	"templateRealEstate": "Real Estate",

	"storeRetail":     "Corner Market",
	"storeRestaurant": "The Golden Spoon",
	"storeHotel":      "Grandview Hotel",
	"storeMedical":    "City Health Clinic",
	"storeInvoice":    "Acme Services Co.",
	"storeRealEstate": "Landmark Realty",

	"labelItem":      "Item",
	"labelDish":      "Dish",
	"labelCharge":    "Charge",
	"labelTreatment": "Treatment",
	"labelService":   "Service",
	"labelProperty":  "Property",
	"labelPrice":     "Price",
	"labelRate":      "Rate",
	"labelFee":       "Fee",
	"labelAmount":    "Amount",
	"labelQuantity":  "Quantity",
	"labelNights":    "Nights",

	"receiptNumber":   "Receipt #",
	"roomNumber":      "Room #",
	"patientId":       "Patient ID",
	"serviceDate":     "Service Date",
	"invoiceNumber":   "Invoice #",
	"propertyAddress": "Property Address",
	"subtotal":        "Subtotal",
	"purchaseAmount":  "Purchase Amount",
	"tax":             "Tax",
	"total":           "Total",
	"balanceDue":      "Balance Due",
	"transactionId":   "Transaction ID",
	"storeName":       "Store Name",
	"thankYou":        "Thank you for your business!",
	"updateNow":       "Update now",
}

var zh = map[string]string{
	"templateRetail":     "零售商店",
	"templateRestaurant": "餐厅",
	"templateHotel":      "酒店",
	"templateMedical":    "诊所",
	"templateInvoice":    "服务发票",
	"templateRealEstate": "房地产",

	"storeRetail":     "街角超市",
	"storeRestaurant": "金勺餐厅",
	"storeHotel":      "观景酒店",
	"storeMedical":    "城市健康诊所",
	"storeInvoice":    "极致服务公司",
	"storeRealEstate": "地标地产",

	"labelItem":      "商品",
	"labelDish":      "菜品",
	"labelCharge":    "费用",
	"labelTreatment": "诊疗项目",
	"labelService":   "服务",
	"labelProperty":  "物业",
	"labelPrice":     "价格",
	"labelRate":      "房价",
	"labelFee":       "费用",
	"labelAmount":    "金额",
	"labelQuantity":  "数量",
	"labelNights":    "晚数",

	"receiptNumber":   "收据编号",
	"roomNumber":      "房间号",
	"patientId":       "患者编号",
	"serviceDate":     "服务日期",
	"invoiceNumber":   "发票编号",
	"propertyAddress": "物业地址",
	"subtotal":        "小计",
	"purchaseAmount":  "购买金额",
	"tax":             "税",
	"total":           "总计",
	"balanceDue":      "应付余额",
	"transactionId":   "交易编号",
	"storeName":       "商店名称",
	"thankYou":        "感谢您的惠顾！",
	"updateNow":       "立即更新",
}

var tables = map[string]map[string]string{
	LocaleEN: en,
	LocaleZH: zh,
}

// Lookup returns the display string for key in the given locale.
func Lookup(key, locale string) string {
	if table, ok := tables[locale]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := en[key]; ok {
		return s
	}
	return key
}
