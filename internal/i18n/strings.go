package i18n

// translations holds the site copy per locale. Keys are dot-scoped by page;
// templates look them up through the t helper.
var translations = map[string]map[string]string{
	"no": {
		"site.name":    "Casa Română",
		"site.tagline": "Rumensk kulturhus i Norge",

		"nav.home":    "Hjem",
		"nav.about":   "Om oss",
		"nav.store":   "Butikk",
		"nav.events":  "Arrangementer",
		"nav.contact": "Kontakt",
		"nav.join":    "Bli medlem",

		"home.title":      "Velkommen til Casa Română",
		"home.intro":      "Et møtested for rumensk kultur, språk og fellesskap i Norge.",
		"home.events":     "Kommende arrangementer",
		"home.store":      "Fra butikken",
		"home.join.cta":   "Bli medlem i dag",
		"home.no.events":  "Ingen kommende arrangementer.",
		"home.no.product": "Ingen produkter ennå.",

		"about.title": "Om Casa Română",

		"store.title":     "Butikk",
		"store.inquire":   "Send forespørsel",
		"store.price":     "Pris",
		"store.empty":     "Ingen produkter tilgjengelig.",
		"store.form.name": "Navn",

		"events.title":     "Arrangementer",
		"events.register":  "Meld deg på",
		"events.attendees": "Antall deltakere",
		"events.empty":     "Ingen arrangementer planlagt.",

		"contact.title":        "Kontakt oss",
		"contact.form.name":    "Navn",
		"contact.form.email":   "E-post",
		"contact.form.phone":   "Telefon",
		"contact.form.subject": "Emne",
		"contact.form.message": "Melding",
		"contact.form.submit":  "Send melding",
		"contact.success":      "Takk! Meldingen din er sendt.",

		"join.title":          "Bli medlem",
		"join.form.firstName": "Fornavn",
		"join.form.lastName":  "Etternavn",
		"join.form.email":     "E-post",
		"join.form.submit":    "Send søknad",
		"join.success":        "Takk! Søknaden din er registrert.",

		"newsletter.title":   "Nyhetsbrev",
		"newsletter.submit":  "Abonner",
		"newsletter.success": "Takk! Du er nå påmeldt nyhetsbrevet.",

		"form.required": "Må fylles ut",
	},
	"en": {
		"site.name":    "Casa Română",
		"site.tagline": "Romanian cultural center in Norway",

		"nav.home":    "Home",
		"nav.about":   "About",
		"nav.store":   "Store",
		"nav.events":  "Events",
		"nav.contact": "Contact",
		"nav.join":    "Join us",

		"home.title":      "Welcome to Casa Română",
		"home.intro":      "A meeting place for Romanian culture, language and community in Norway.",
		"home.events":     "Upcoming events",
		"home.store":      "From the store",
		"home.join.cta":   "Become a member today",
		"home.no.events":  "No upcoming events.",
		"home.no.product": "No products yet.",

		"about.title": "About Casa Română",

		"store.title":     "Store",
		"store.inquire":   "Send inquiry",
		"store.price":     "Price",
		"store.empty":     "No products available.",
		"store.form.name": "Name",

		"events.title":     "Events",
		"events.register":  "Register",
		"events.attendees": "Number of attendees",
		"events.empty":     "No events scheduled.",

		"contact.title":        "Contact us",
		"contact.form.name":    "Name",
		"contact.form.email":   "Email",
		"contact.form.phone":   "Phone",
		"contact.form.subject": "Subject",
		"contact.form.message": "Message",
		"contact.form.submit":  "Send message",
		"contact.success":      "Thank you! Your message has been sent.",

		"join.title":          "Join us",
		"join.form.firstName": "First name",
		"join.form.lastName":  "Last name",
		"join.form.email":     "Email",
		"join.form.submit":    "Submit application",
		"join.success":        "Thank you! Your application has been received.",

		"newsletter.title":   "Newsletter",
		"newsletter.submit":  "Subscribe",
		"newsletter.success": "Thank you! You are now subscribed.",

		"form.required": "Required",
	},
	"ro": {
		"site.name":    "Casa Română",
		"site.tagline": "Centru cultural românesc în Norvegia",

		"nav.home":    "Acasă",
		"nav.about":   "Despre noi",
		"nav.store":   "Magazin",
		"nav.events":  "Evenimente",
		"nav.contact": "Contact",
		"nav.join":    "Devino membru",

		"home.title":      "Bine ați venit la Casa Română",
		"home.intro":      "Un loc de întâlnire pentru cultura, limba și comunitatea românească din Norvegia.",
		"home.events":     "Evenimente viitoare",
		"home.store":      "Din magazin",
		"home.join.cta":   "Devino membru azi",
		"home.no.events":  "Niciun eveniment programat.",
		"home.no.product": "Niciun produs încă.",

		"about.title": "Despre Casa Română",

		"store.title":     "Magazin",
		"store.inquire":   "Trimite o solicitare",
		"store.price":     "Preț",
		"store.empty":     "Niciun produs disponibil.",
		"store.form.name": "Nume",

		"events.title":     "Evenimente",
		"events.register":  "Înscrie-te",
		"events.attendees": "Număr de participanți",
		"events.empty":     "Niciun eveniment programat.",

		"contact.title":        "Contactează-ne",
		"contact.form.name":    "Nume",
		"contact.form.email":   "E-mail",
		"contact.form.phone":   "Telefon",
		"contact.form.subject": "Subiect",
		"contact.form.message": "Mesaj",
		"contact.form.submit":  "Trimite mesajul",
		"contact.success":      "Mulțumim! Mesajul tău a fost trimis.",

		"join.title":          "Devino membru",
		"join.form.firstName": "Prenume",
		"join.form.lastName":  "Nume",
		"join.form.email":     "E-mail",
		"join.form.submit":    "Trimite cererea",
		"join.success":        "Mulțumim! Cererea ta a fost înregistrată.",

		"newsletter.title":   "Buletin informativ",
		"newsletter.submit":  "Abonează-te",
		"newsletter.success": "Mulțumim! Te-ai abonat.",

		"form.required": "Obligatoriu",
	},
}
