package locale

var french = Table{
	KeySkipToContent: "Aller au contenu principal",
	KeyHome:          "Accueil",
	KeyProducts:      "Produits",
	KeyCart:          "🛍️ Panier",
	KeyLanguage:      "Langue",
	KeySiteTitle:     "🌸 Mimoo Store - Goodies Nature & Culture Pop 🦋",

	KeyHeroTitle:    "Explorer la boutique de Mimoo 🌸",
	KeyHeroSubtitle: "Découvrez d'incroyables porte-clés, impressions, badges, breloques et œuvres d'art originales inspirées de la nature et de la culture pop",
	KeyShopNow:      "Acheter Maintenant ✨",

	KeyCategories:  "Catégories",
	KeyAllProducts: "Tous les produits",
	KeyKeychains:   "🔑 Porte-clés",
	KeyPrints:      "🖼️ Impressions",
	KeyBadges:      "🏅 Badges",
	KeyCharms:      "✨ Breloques",

	KeyOurCollection:     "Notre Collection de Goodies 🛍️",
	KeyAddToCart:         "Ajouter au Panier 🛒",
	KeyPopular:           "Populaire",
	KeySearchPlaceholder: "Rechercher des goodies...",
	KeySearch:            "Rechercher",
	KeyNoProductsFound:   "Aucun produit trouvé dans cette catégorie! 😔",
	KeyCheckBackSoon:     "Revenez bientôt pour plus d'articles fantastiques! ✨",

	KeyItemsPerPage: "Articles par page:",
	KeyPrevious:     "← Précédent",
	KeyNext:         "Suivant →",
	KeyPage:         "Page",
	KeyOf:           "sur",

	KeyYourCart:         "Votre Panier 🛒",
	KeyEmptyCart:        "Votre panier est vide! Commencez à acheter pour le remplir d'articles fantastiques! 🌈",
	KeyTotal:            "Total:",
	KeyProceedToPayment: "Procéder au paiement ✨",
	KeyRemove:           "Retirer",
	KeyQuantity:         "Quantité",
	KeyItemAdded:        "{{name}} ajouté au panier !",
	KeyItemsOne:         "{{count}} article",
	KeyItemsOther:       "{{count}} articles",

	KeyCheckout:             "Commande",
	KeyDeliveryInfo:         "Informations de livraison",
	KeyFirstName:            "Prénom *",
	KeyLastName:             "Nom *",
	KeyEmail:                "Email *",
	KeyPhone:                "Téléphone",
	KeyAddress:              "Adresse *",
	KeyCity:                 "Ville *",
	KeyPostalCode:           "Code postal *",
	KeyCountry:              "Pays *",
	KeyDeliveryNotes:        "Instructions de livraison",
	KeyDeliveryMethod:       "Mode de livraison",
	KeyDeliveryStandard:     "📦 Livraison standard",
	KeyDeliveryExpress:      "⚡ Livraison express",
	KeyDeliveryPickup:       "🏪 Retrait en point relais",
	KeyDeliveryTimeStandard: "3-5 jours ouvrés",
	KeyDeliveryTimeExpress:  "24-48h",
	KeyDeliveryTimePickup:   "2-4 jours ouvrés",
	KeyNewsletter:           "S'inscrire à la newsletter",
	KeyAcceptTerms:          "J'accepte les conditions générales de vente *",
	KeyAcceptPrivacy:        "J'accepte la politique de confidentialité *",
	KeyOrderSummary:         "Récapitulatif de commande",
	KeySubtotal:             "Sous-total",
	KeyShipping:             "Livraison",
	KeyTax:                  "TVA (20%)",
	KeyDiscount:             "Remise",
	KeyPromoCode:            "Code promo",
	KeyApplyPromo:           "Appliquer",
	KeyPromoApplied:         "Appliqué",
	KeyPromoAppliedMessage:  "✅ {{label}} appliquée !",
	KeyPromoEmpty:           "Veuillez entrer un code promo",
	KeyPromoInvalid:         "Code promo invalide",
	KeyPromoWelcome10:       "10% de réduction",
	KeyPromoMimoo20:         "20% de réduction",
	KeyPromoFreeship:        "Livraison gratuite",
	KeyPromoAnime5:          "5€ de réduction",
	KeyPay:                  "Payer",
	KeyProcessing:           "Traitement en cours... ⏳",
	KeyPaymentDemoMode:      "Paiement en mode démo : aucune carte ne sera débitée.",
	KeyPaymentFailed:        "Erreur de paiement : {{reason}}",
	KeyPaymentInProgress:    "Un paiement est déjà en cours.",
	KeyFillAllFields:        "Veuillez remplir tous les champs requis!",
	KeyCartEmpty:            "Votre panier est vide! Ajoutez quelques articles d'abord! 🛍️",
	KeyBackToCart:           "Retour au panier",
	KeyDismiss:              "Fermer",

	KeyPaymentMethod: "Moyen de paiement",
	KeyPaymentCard:   "💳 Carte",
	KeyPaymentPaypal: "🅿️ PayPal",
	KeyPaypalNotice:  "Vous confirmerez le paiement avec PayPal après validation.",
	KeyCardHolder:    "Nom sur la carte *",
	KeyCardNumber:    "Numéro de carte *",
	KeyCardExpiry:    "Expiration (MM/AA) *",
	KeyCardCvc:       "CVC *",
	KeyCardEnding:    "se terminant par {{last4}}",

	KeyPaymentSuccess:    "Paiement réussi! 🎉",
	KeyOrderNumber:       "Commande #",
	KeyThankYou:          "Merci",
	KeyConfirmationEmail: "Un email de confirmation a été envoyé à",
	KeyDeliverySoon:      "Vos articles seront livrés sous peu! ✨",
	KeyOrderDate:         "Date de commande",
	KeyEstimatedDelivery: "Livraison estimée",
	KeyShippingAddress:   "Adresse de livraison",
	KeyPaymentReference:  "Référence de paiement",
	KeyDownloadReceipt:   "Télécharger le récapitulatif",
	KeyContinueShopping:  "Continuer mes achats",
	KeyDemoOrderNotice:   "Commande introuvable, voici une commande d'exemple.",

	KeyNewsletterTitle:      "Restez informé 💌",
	KeyNewsletterText:       "Nouveautés et nouvelles de l'artiste, sans spam.",
	KeyNewsletterSubscribe:  "S'abonner",
	KeyNewsletterSubscribed: "Merci ! Vous êtes abonné ✨",
	KeyReviewOpen:           "Laisser un avis ⭐",
	KeyReviewTitle:          "Comment s'est passée votre commande ?",
	KeyReviewText:           "Votre avis aide une petite artiste à grandir. Choisissez une plateforme :",

	KeyDeliveryExpected: "Livraison prévue le {{date}}",
	KeyReceiptTitle:     "MIMOO STORE - CONFIRMATION DE COMMANDE",
	KeyReceiptCustomer:  "Client",
	KeyReceiptItems:     "ARTICLES COMMANDÉS:",
	KeyReceiptQty:       "Qté",
	KeyReceiptTotals:    "TOTAUX:",
	KeyReceiptAddress:   "ADRESSE DE LIVRAISON:",
	KeyReceiptThanks:    "Merci pour votre commande !",
	KeyReceiptSignature: "L'équipe Mimoo Store 💖",

	KeyBannerTitle:   "Artiste indépendant en démarrage",
	KeyBannerText:    "Pas encore de retours possibles (sauf défaut) - budget et logistique limités. Merci de votre compréhension ! 🙏",
	KeyBannerDismiss: "J'ai compris",
	KeyBannerReset:   "Réafficher le message de l'artiste",

	KeyContactTitle:   "Nous contacter",
	KeyContactText:    "Une question sur une commande ou une pièce sur mesure ? Écrivez-nous.",
	KeyContactName:    "Nom *",
	KeyContactMessage: "Message *",
	KeyContactSend:    "Envoyer",
	KeyContactSent:    "Merci ! Nous vous répondrons bientôt 💌",

	KeyValidationRequired:  "Ce champ est obligatoire",
	KeyValidationMinLength: "Au moins {{min}} caractères",
	KeyValidationMaxLength: "{{max}} caractères maximum",
	KeyValidationEmail:     "Format d'email invalide",
	KeyValidationDigits:    "Chiffres uniquement",
	KeyValidationAccepted:  "Veuillez cocher pour continuer",
	KeyValidationOneOf:     "Veuillez choisir une option valide",
	KeyValidationPattern:   "Format invalide",
	KeyValidationPositive:  "Le total doit être supérieur à zéro",

	KeyValidationCardNumber: "Numéro de carte invalide",
	KeyValidationCardExpiry: "Date invalide ou expirée",

	KeyErrorTitle:    "Oups !",
	KeyErrorNotFound: "Cette page n'existe pas.",
	KeyErrorGeneric:  "Une erreur est survenue. Veuillez réessayer.",
}
