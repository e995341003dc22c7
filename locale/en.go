package locale

var english = Table{
	KeySkipToContent: "Skip to main content",
	KeyHome:          "Home",
	KeyProducts:      "Products",
	KeyCart:          "🛍️ Cart",
	KeyLanguage:      "Language",
	KeySiteTitle:     "🌸 Mimoo Store - Nature & Pop Culture Goodies 🦋",

	KeyHeroTitle:    "Explore Mimoo's Shop 🌸",
	KeyHeroSubtitle: "Discover amazing keychains, prints, badges, charms, and original artwork inspired by nature and pop culture",
	KeyShopNow:      "Shop Now ✨",

	KeyCategories:  "Categories",
	KeyAllProducts: "All Products",
	KeyKeychains:   "🔑 Keychains",
	KeyPrints:      "🖼️ Prints",
	KeyBadges:      "🏅 Badges",
	KeyCharms:      "✨ Charms",

	KeyOurCollection:     "Our Goodies Collection 🛍️",
	KeyAddToCart:         "Add to Cart 🛒",
	KeyPopular:           "Popular",
	KeySearchPlaceholder: "Search goodies...",
	KeySearch:            "Search",
	KeyNoProductsFound:   "No products found in this category! 😔",
	KeyCheckBackSoon:     "Check back soon for more amazing goodies! ✨",

	KeyItemsPerPage: "Items per page:",
	KeyPrevious:     "← Previous",
	KeyNext:         "Next →",
	KeyPage:         "Page",
	KeyOf:           "of",

	KeyYourCart:         "Your Shopping Cart 🛒",
	KeyEmptyCart:        "Your cart is empty! Start shopping to fill it with amazing goodies! 🌈",
	KeyTotal:            "Total:",
	KeyProceedToPayment: "Proceed to Payment ✨",
	KeyRemove:           "Remove",
	KeyQuantity:         "Quantity",
	KeyItemAdded:        "{{name}} added to cart!",
	KeyItemsOne:         "{{count}} item",
	KeyItemsOther:       "{{count}} items",

	KeyCheckout:             "Checkout",
	KeyDeliveryInfo:         "Delivery information",
	KeyFirstName:            "First name *",
	KeyLastName:             "Last name *",
	KeyEmail:                "Email *",
	KeyPhone:                "Phone",
	KeyAddress:              "Address *",
	KeyCity:                 "City *",
	KeyPostalCode:           "Postal code *",
	KeyCountry:              "Country *",
	KeyDeliveryNotes:        "Delivery notes",
	KeyDeliveryMethod:       "Delivery method",
	KeyDeliveryStandard:     "📦 Standard delivery",
	KeyDeliveryExpress:      "⚡ Express delivery",
	KeyDeliveryPickup:       "🏪 Pickup point",
	KeyDeliveryTimeStandard: "3-5 business days",
	KeyDeliveryTimeExpress:  "24-48 hours",
	KeyDeliveryTimePickup:   "2-4 business days",
	KeyNewsletter:           "Subscribe to the newsletter",
	KeyAcceptTerms:          "I accept the terms and conditions *",
	KeyAcceptPrivacy:        "I accept the privacy policy *",
	KeyOrderSummary:         "Order summary",
	KeySubtotal:             "Subtotal",
	KeyShipping:             "Shipping",
	KeyTax:                  "VAT (20%)",
	KeyDiscount:             "Discount",
	KeyPromoCode:            "Promo code",
	KeyApplyPromo:           "Apply",
	KeyPromoApplied:         "Applied",
	KeyPromoAppliedMessage:  "✅ {{label}} applied!",
	KeyPromoEmpty:           "Please enter a promo code",
	KeyPromoInvalid:         "Invalid promo code",
	KeyPromoWelcome10:       "10% off",
	KeyPromoMimoo20:         "20% off",
	KeyPromoFreeship:        "Free shipping",
	KeyPromoAnime5:          "€5 off",
	KeyPay:                  "Pay",
	KeyProcessing:           "Processing... ⏳",
	KeyPaymentDemoMode:      "Demo payment mode: no card will be charged.",
	KeyPaymentFailed:        "Payment error: {{reason}}",
	KeyPaymentInProgress:    "A payment is already in progress.",
	KeyFillAllFields:        "Please fill in all required fields!",
	KeyCartEmpty:            "Your cart is empty! Add some goodies first! 🛍️",
	KeyBackToCart:           "Back to Cart",
	KeyDismiss:              "Close",

	KeyPaymentMethod: "Payment method",
	KeyPaymentCard:   "💳 Card",
	KeyPaymentPaypal: "🅿️ PayPal",
	KeyPaypalNotice:  "You will confirm the payment with PayPal after submitting.",
	KeyCardHolder:    "Name on card *",
	KeyCardNumber:    "Card number *",
	KeyCardExpiry:    "Expiry (MM/YY) *",
	KeyCardCvc:       "CVC *",
	KeyCardEnding:    "ending in {{last4}}",

	KeyPaymentSuccess:    "Payment Successful! 🎉",
	KeyOrderNumber:       "Order #",
	KeyThankYou:          "Thank you",
	KeyConfirmationEmail: "A confirmation email has been sent to",
	KeyDeliverySoon:      "Your items will be delivered soon! ✨",
	KeyOrderDate:         "Order date",
	KeyEstimatedDelivery: "Estimated delivery",
	KeyShippingAddress:   "Shipping address",
	KeyPaymentReference:  "Payment reference",
	KeyDownloadReceipt:   "Download receipt",
	KeyContinueShopping:  "Continue shopping",
	KeyDemoOrderNotice:   "We could not find this order, here is a sample order instead.",

	KeyNewsletterTitle:      "Stay in the loop 💌",
	KeyNewsletterText:       "New drops and artist news, no spam.",
	KeyNewsletterSubscribe:  "Subscribe",
	KeyNewsletterSubscribed: "Thanks! You are subscribed ✨",
	KeyReviewOpen:           "Leave a review ⭐",
	KeyReviewTitle:          "How was your order?",
	KeyReviewText:           "Your review helps a small artist grow. Pick a platform:",

	KeyDeliveryExpected: "Delivery expected on {{date}}",
	KeyReceiptTitle:     "MIMOO STORE - ORDER CONFIRMATION",
	KeyReceiptCustomer:  "Customer",
	KeyReceiptItems:     "ITEMS ORDERED:",
	KeyReceiptQty:       "Qty",
	KeyReceiptTotals:    "TOTALS:",
	KeyReceiptAddress:   "SHIPPING ADDRESS:",
	KeyReceiptThanks:    "Thank you for your order!",
	KeyReceiptSignature: "The Mimoo Store team 💖",

	KeyBannerTitle:   "Independent artist just starting out",
	KeyBannerText:    "No returns yet (except for defects) - limited budget and logistics. Thank you for understanding! 🙏",
	KeyBannerDismiss: "Got it",
	KeyBannerReset:   "Show the artist notice again",

	KeyContactTitle:   "Contact us",
	KeyContactText:    "A question about an order or a custom piece? Write to us.",
	KeyContactName:    "Name *",
	KeyContactMessage: "Message *",
	KeyContactSend:    "Send",
	KeyContactSent:    "Thank you! We will reply soon 💌",

	KeyValidationRequired:  "This field is required",
	KeyValidationMinLength: "Must be at least {{min}} characters",
	KeyValidationMaxLength: "Must not exceed {{max}} characters",
	KeyValidationEmail:     "Invalid email format",
	KeyValidationDigits:    "Digits only",
	KeyValidationAccepted:  "Please accept to continue",
	KeyValidationOneOf:     "Please choose a valid option",
	KeyValidationPattern:   "Invalid format",
	KeyValidationPositive:  "The total must be greater than zero",

	KeyValidationCardNumber: "Invalid card number",
	KeyValidationCardExpiry: "Invalid or expired date",

	KeyErrorTitle:    "Oops!",
	KeyErrorNotFound: "This page does not exist.",
	KeyErrorGeneric:  "Something went wrong. Please try again.",
}
