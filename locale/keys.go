package locale

// Key identifies a UI string. Every key has an entry in each locale table;
// the table types are sized by keyCount so a key cannot be dropped silently.
type Key int

const (
	KeySkipToContent Key = iota
	KeyHome
	KeyProducts
	KeyCart
	KeyLanguage
	KeySiteTitle

	KeyHeroTitle
	KeyHeroSubtitle
	KeyShopNow

	KeyCategories
	KeyAllProducts
	KeyKeychains
	KeyPrints
	KeyBadges
	KeyCharms

	KeyOurCollection
	KeyAddToCart
	KeyPopular
	KeySearchPlaceholder
	KeySearch
	KeyNoProductsFound
	KeyCheckBackSoon

	KeyItemsPerPage
	KeyPrevious
	KeyNext
	KeyPage
	KeyOf

	KeyYourCart
	KeyEmptyCart
	KeyTotal
	KeyProceedToPayment
	KeyRemove
	KeyQuantity
	KeyItemAdded
	KeyItemsOne
	KeyItemsOther

	KeyCheckout
	KeyDeliveryInfo
	KeyFirstName
	KeyLastName
	KeyEmail
	KeyPhone
	KeyAddress
	KeyCity
	KeyPostalCode
	KeyCountry
	KeyDeliveryNotes
	KeyDeliveryMethod
	KeyDeliveryStandard
	KeyDeliveryExpress
	KeyDeliveryPickup
	KeyDeliveryTimeStandard
	KeyDeliveryTimeExpress
	KeyDeliveryTimePickup
	KeyNewsletter
	KeyAcceptTerms
	KeyAcceptPrivacy
	KeyOrderSummary
	KeySubtotal
	KeyShipping
	KeyTax
	KeyDiscount
	KeyPromoCode
	KeyApplyPromo
	KeyPromoApplied
	KeyPromoAppliedMessage
	KeyPromoEmpty
	KeyPromoInvalid
	KeyPromoWelcome10
	KeyPromoMimoo20
	KeyPromoFreeship
	KeyPromoAnime5
	KeyPay
	KeyProcessing
	KeyPaymentDemoMode
	KeyPaymentFailed
	KeyPaymentInProgress
	KeyFillAllFields
	KeyCartEmpty
	KeyBackToCart
	KeyDismiss

	KeyPaymentMethod
	KeyPaymentCard
	KeyPaymentPaypal
	KeyPaypalNotice
	KeyCardHolder
	KeyCardNumber
	KeyCardExpiry
	KeyCardCvc
	KeyCardEnding

	KeyPaymentSuccess
	KeyOrderNumber
	KeyThankYou
	KeyConfirmationEmail
	KeyDeliverySoon
	KeyOrderDate
	KeyEstimatedDelivery
	KeyShippingAddress
	KeyPaymentReference
	KeyDownloadReceipt
	KeyContinueShopping
	KeyDemoOrderNotice

	KeyNewsletterTitle
	KeyNewsletterText
	KeyNewsletterSubscribe
	KeyNewsletterSubscribed
	KeyReviewOpen
	KeyReviewTitle
	KeyReviewText

	KeyDeliveryExpected
	KeyReceiptTitle
	KeyReceiptCustomer
	KeyReceiptItems
	KeyReceiptQty
	KeyReceiptTotals
	KeyReceiptAddress
	KeyReceiptThanks
	KeyReceiptSignature

	KeyBannerTitle
	KeyBannerText
	KeyBannerDismiss
	KeyBannerReset

	KeyContactTitle
	KeyContactText
	KeyContactName
	KeyContactMessage
	KeyContactSend
	KeyContactSent

	KeyValidationRequired
	KeyValidationMinLength
	KeyValidationMaxLength
	KeyValidationEmail
	KeyValidationDigits
	KeyValidationAccepted
	KeyValidationOneOf
	KeyValidationPattern
	KeyValidationPositive

	KeyValidationCardNumber
	KeyValidationCardExpiry

	KeyErrorTitle
	KeyErrorNotFound
	KeyErrorGeneric

	keyCount
)

// Table holds one string per Key.
type Table [keyCount]string

var names = Table{
	KeySkipToContent: "skipToContent",
	KeyHome:          "home",
	KeyProducts:      "products",
	KeyCart:          "cart",
	KeyLanguage:      "language",
	KeySiteTitle:     "siteTitle",

	KeyHeroTitle:    "heroTitle",
	KeyHeroSubtitle: "heroSubtitle",
	KeyShopNow:      "shopNow",

	KeyCategories:  "categories",
	KeyAllProducts: "allProducts",
	KeyKeychains:   "keychains",
	KeyPrints:      "prints",
	KeyBadges:      "badges",
	KeyCharms:      "charms",

	KeyOurCollection:     "ourCollection",
	KeyAddToCart:         "addToCart",
	KeyPopular:           "popular",
	KeySearchPlaceholder: "searchPlaceholder",
	KeySearch:            "search",
	KeyNoProductsFound:   "noProductsFound",
	KeyCheckBackSoon:     "checkBackSoon",

	KeyItemsPerPage: "itemsPerPage",
	KeyPrevious:     "previous",
	KeyNext:         "next",
	KeyPage:         "page",
	KeyOf:           "of",

	KeyYourCart:         "yourCart",
	KeyEmptyCart:        "emptyCart",
	KeyTotal:            "total",
	KeyProceedToPayment: "proceedToPayment",
	KeyRemove:           "remove",
	KeyQuantity:         "quantity",
	KeyItemAdded:        "itemAdded",
	KeyItemsOne:         "items.one",
	KeyItemsOther:       "items.other",

	KeyCheckout:             "checkout",
	KeyDeliveryInfo:         "deliveryInfo",
	KeyFirstName:            "firstName",
	KeyLastName:             "lastName",
	KeyEmail:                "email",
	KeyPhone:                "phone",
	KeyAddress:              "address",
	KeyCity:                 "city",
	KeyPostalCode:           "postalCode",
	KeyCountry:              "country",
	KeyDeliveryNotes:        "deliveryNotes",
	KeyDeliveryMethod:       "deliveryMethod",
	KeyDeliveryStandard:     "delivery.standard",
	KeyDeliveryExpress:      "delivery.express",
	KeyDeliveryPickup:       "delivery.pickup",
	KeyDeliveryTimeStandard: "deliveryTime.standard",
	KeyDeliveryTimeExpress:  "deliveryTime.express",
	KeyDeliveryTimePickup:   "deliveryTime.pickup",
	KeyNewsletter:           "newsletter",
	KeyAcceptTerms:          "acceptTerms",
	KeyAcceptPrivacy:        "acceptPrivacy",
	KeyOrderSummary:         "orderSummary",
	KeySubtotal:             "subtotal",
	KeyShipping:             "shipping",
	KeyTax:                  "tax",
	KeyDiscount:             "discount",
	KeyPromoCode:            "promoCode",
	KeyApplyPromo:           "applyPromo",
	KeyPromoApplied:         "promoApplied",
	KeyPromoAppliedMessage:  "promoAppliedMessage",
	KeyPromoEmpty:           "promoEmpty",
	KeyPromoInvalid:         "promoInvalid",
	KeyPromoWelcome10:       "promo.WELCOME10",
	KeyPromoMimoo20:         "promo.MIMOO20",
	KeyPromoFreeship:        "promo.FREESHIP",
	KeyPromoAnime5:          "promo.ANIME5",
	KeyPay:                  "pay",
	KeyProcessing:           "processing",
	KeyPaymentDemoMode:      "paymentDemoMode",
	KeyPaymentFailed:        "paymentFailed",
	KeyPaymentInProgress:    "paymentInProgress",
	KeyFillAllFields:        "fillAllFields",
	KeyCartEmpty:            "cartEmpty",
	KeyBackToCart:           "backToCart",
	KeyDismiss:              "dismiss",

	KeyPaymentMethod: "paymentMethod",
	KeyPaymentCard:   "paymentCard",
	KeyPaymentPaypal: "paymentPaypal",
	KeyPaypalNotice:  "paypalNotice",
	KeyCardHolder:    "cardHolder",
	KeyCardNumber:    "cardNumber",
	KeyCardExpiry:    "cardExpiry",
	KeyCardCvc:       "cardCvc",
	KeyCardEnding:    "cardEnding",

	KeyPaymentSuccess:    "paymentSuccess",
	KeyOrderNumber:       "orderNumber",
	KeyThankYou:          "thankYou",
	KeyConfirmationEmail: "confirmationEmail",
	KeyDeliverySoon:      "deliverySoon",
	KeyOrderDate:         "orderDate",
	KeyEstimatedDelivery: "estimatedDelivery",
	KeyShippingAddress:   "shippingAddress",
	KeyPaymentReference:  "paymentReference",
	KeyDownloadReceipt:   "downloadReceipt",
	KeyContinueShopping:  "continueShopping",
	KeyDemoOrderNotice:   "demoOrderNotice",

	KeyNewsletterTitle:      "newsletter.title",
	KeyNewsletterText:       "newsletter.text",
	KeyNewsletterSubscribe:  "newsletter.subscribe",
	KeyNewsletterSubscribed: "newsletter.subscribed",
	KeyReviewOpen:           "review.open",
	KeyReviewTitle:          "review.title",
	KeyReviewText:           "review.text",

	KeyDeliveryExpected: "deliveryExpected",
	KeyReceiptTitle:     "receipt.title",
	KeyReceiptCustomer:  "receipt.customer",
	KeyReceiptItems:     "receipt.items",
	KeyReceiptQty:       "receipt.qty",
	KeyReceiptTotals:    "receipt.totals",
	KeyReceiptAddress:   "receipt.address",
	KeyReceiptThanks:    "receipt.thanks",
	KeyReceiptSignature: "receipt.signature",

	KeyBannerTitle:   "banner.title",
	KeyBannerText:    "banner.text",
	KeyBannerDismiss: "banner.dismiss",
	KeyBannerReset:   "banner.reset",

	KeyContactTitle:   "contact.title",
	KeyContactText:    "contact.text",
	KeyContactName:    "contact.name",
	KeyContactMessage: "contact.message",
	KeyContactSend:    "contact.send",
	KeyContactSent:    "contact.sent",

	KeyValidationRequired:  "validation.required",
	KeyValidationMinLength: "validation.min_length",
	KeyValidationMaxLength: "validation.max_length",
	KeyValidationEmail:     "validation.email",
	KeyValidationDigits:    "validation.digits",
	KeyValidationAccepted:  "validation.accepted",
	KeyValidationOneOf:     "validation.one_of",
	KeyValidationPattern:   "validation.pattern",
	KeyValidationPositive:  "validation.positive",

	KeyValidationCardNumber: "validation.card_number",
	KeyValidationCardExpiry: "validation.card_expiry",

	KeyErrorTitle:    "error.title",
	KeyErrorNotFound: "error.notFound",
	KeyErrorGeneric:  "error.generic",
}

// String returns the lookup name of k, for example "addToCart".
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return names[k]
}

// Keys returns every defined key in declaration order.
func Keys() []Key {
	out := make([]Key, keyCount)
	for i := range out {
		out[i] = Key(i)
	}
	return out
}

// KeyByName finds the key with the given lookup name.
func KeyByName(name string) (Key, bool) {
	if name == "" {
		return 0, false
	}
	for i, n := range names {
		if n == name {
			return Key(i), true
		}
	}
	return 0, false
}
