package mockapi

import "github.com/userdesk/userdesk.go/pkg/models"

// seedUsers returns the fixed list GET /users serves. Writes never touch
// it; the real collaborator behaves the same way.
func seedUsers() []models.APIUser {
	return []models.APIUser{
		{
			ID:       1,
			Name:     "Leanne Graham",
			Username: "Bret",
			Email:    "Sincere@april.biz",
			Address: models.Address{
				Street:  "Kulas Light",
				Suite:   "Apt. 556",
				City:    "Gwenborough",
				Zipcode: "92998-3874",
				Geo:     models.Geo{Lat: "-37.3159", Lng: "81.1496"},
			},
			Phone:   "1-770-736-8031 x56442",
			Website: "hildegard.org",
			Company: models.Company{
				Name:        "Romaguera-Crona",
				CatchPhrase: "Multi-layered client-server neural-net",
				BS:          "harness real-time e-markets",
			},
		},
		{
			ID:       2,
			Name:     "Ervin Howell",
			Username: "Antonette",
			Email:    "Shanna@melissa.tv",
			Phone:    "010-692-6593 x09125",
			Website:  "anastasia.net",
			Company: models.Company{
				Name:        "Deckow-Crist",
				CatchPhrase: "Proactive didactic contingency",
				BS:          "synergize scalable supply-chains",
			},
		},
		{
			ID:       3,
			Name:     "Clementine Bauch",
			Username: "Samantha",
			Email:    "Nathan@yesenia.net",
			Phone:    "1-463-123-4447",
			Website:  "ramiro.info",
			Company:  models.Company{Name: "Romaguera-Jacobson"},
		},
		{
			ID:       4,
			Name:     "Patricia Lebsack",
			Username: "Karianne",
			Email:    "Julianne.OConner@kory.org",
			Phone:    "493-170-9623 x156",
			Website:  "kale.biz",
			Company:  models.Company{Name: "Robel-Corkery"},
		},
		{
			ID:       5,
			Name:     "Chelsey Dietrich",
			Username: "Kamren",
			Email:    "Lucio_Hettinger@annie.ca",
			Phone:    "(254)954-1289",
			Website:  "demarco.info",
			Company:  models.Company{Name: "Keebler LLC"},
		},
		{
			ID:       6,
			Name:     "Mrs. Dennis Schulist",
			Username: "Leopoldo_Corkery",
			Email:    "Karley_Dach@jasper.info",
			Phone:    "1-477-935-8478 x6430",
			Website:  "ola.org",
			Company:  models.Company{Name: "Considine-Lockman"},
		},
		{
			ID:       7,
			Name:     "Kurtis Weissnat",
			Username: "Elwyn.Skiles",
			Email:    "Telly.Hoeger@billy.biz",
			Phone:    "210.067.6132",
			Website:  "elvis.io",
			Company:  models.Company{Name: "Johns Group"},
		},
		{
			ID:       8,
			Name:     "Nicholas Runolfsdottir V",
			Username: "Maxime_Nienow",
			Email:    "Sherwood@rosamond.me",
			Phone:    "586.493.6943 x140",
			Website:  "jacynthe.com",
			Company:  models.Company{Name: "Abernathy Group"},
		},
		{
			ID:       9,
			Name:     "Glenna Reichert",
			Username: "Delphine",
			Email:    "Chaim_McDermott@dana.io",
			Phone:    "(775)976-6794 x41206",
			Website:  "conrad.com",
			Company:  models.Company{Name: "Yost and Sons"},
		},
		{
			ID:       10,
			Name:     "Clementina DuBuque",
			Username: "Moriah.Stanton",
			Email:    "Rey.Padberg@karina.biz",
			Phone:    "024-648-3804",
			Website:  "ambrose.net",
			Company:  models.Company{Name: "Hoeger LLC"},
		},
	}
}
