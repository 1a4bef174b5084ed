package repos

import (
	"golang.org/x/crypto/bcrypt"

	"wecamp/internal/domain"
)

// Seed data written on a slot's first access so the UI is never empty on a
// fresh install. Fixed IDs keep re-seeding idempotent across stores.

func stamp(id string) domain.Meta {
	return domain.Meta{ID: id, CreatedAt: nowUTC(), Version: 1}
}

func seedBrands() []domain.Brand {
	mk := func(id, name string) domain.Brand {
		return domain.Brand{Meta: stamp(id), Name: name}
	}
	return []domain.Brand{
		mk("brand-coleman", "Coleman"),
		mk("brand-msr", "MSR"),
		mk("brand-nemo", "NEMO Equipment"),
	}
}

func seedColors() []domain.Color {
	mk := func(id, name, hex string) domain.Color {
		return domain.Color{Meta: stamp(id), Name: name, HexCode: hex}
	}
	return []domain.Color{
		mk("color-forest-green", "Forest Green", "#228B22"),
		mk("color-sand", "Sand", "#C2B280"),
		mk("color-ember-orange", "Ember Orange", "#F05A28"),
	}
}

func seedCategories() []domain.Category {
	mk := func(id, name, slug, parent string, order int) domain.Category {
		return domain.Category{Meta: stamp(id), Name: name, Slug: slug, ParentID: parent, Order: order}
	}
	return []domain.Category{
		mk("cat-tents", "Tents & Shelters", "tents", "", 1),
		mk("cat-sleeping", "Sleeping", "sleeping", "", 2),
		mk("cat-sleeping-bags", "Sleeping Bags", "sleeping-bags", "cat-sleeping", 1),
		mk("cat-cooking", "Camp Kitchen", "cooking", "", 3),
	}
}

func seedCampsites() []domain.Campsite {
	site := domain.Campsite{
		Meta:          stamp("site-pinecove"),
		Name:          "Pine Cove",
		Description:   "Quiet lakeside pitch under old pines, short walk to the boat ramp.",
		Location:      "Lake Arrowhead, CA",
		Capacity:      6,
		PricePerNight: 45,
		Amenities:     []string{"fire-pit", "potable-water", "pit-toilet"},
		Rules:         []string{"Quiet hours 22:00-07:00", "No glass at the shore", "Pack out all trash"},
		Rating:        4.5,
	}
	return []domain.Campsite{site}
}

func seedUsers() []domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("Campfire1!"), 12)
	admin := domain.User{
		Meta:  stamp("u-admin"),
		Email: "admin@wecamp.test",
		Name:  "Admin",
		Hash:  string(hash),
		Role:  "ADMIN",
	}
	return []domain.User{admin}
}
