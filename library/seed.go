package library

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Demo login credentials, printed by the console app at startup.
const (
	DemoStudentPassword   = "pass123"
	DemoFacultyPassword   = "pass456"
	DemoLibrarianPassword = "pass789"
)

// SeedDemo loads the demo users and catalog into an empty store. Users and
// items are session-scoped: they are rebuilt from this seed on every run,
// while transactions reload from the durable store.
func SeedDemo(store *Store) error {
	type seedUser struct {
		user     User
		password string
	}
	users := []seedUser{
		{User{ID: "S001", Name: "Alice Johnson", Email: "alice.johnson@university.edu", Role: RoleStudent, Age: 20, JoinDate: "2024-01-15",
			Profile: map[string]string{"studentId": "STU2024001", "major": "Computer Science", "year": "2"}}, DemoStudentPassword},
		{User{ID: "S002", Name: "Bob Smith", Email: "bob.smith@university.edu", Role: RoleStudent, Age: 21, JoinDate: "2024-01-20",
			Profile: map[string]string{"studentId": "STU2024002", "major": "Mathematics", "year": "3"}}, DemoStudentPassword},
		{User{ID: "S003", Name: "Carol Davis", Email: "carol.davis@university.edu", Role: RoleStudent, Age: 19, JoinDate: "2024-02-01",
			Profile: map[string]string{"studentId": "STU2024003", "major": "Physics", "year": "1"}}, DemoStudentPassword},
		{User{ID: "F001", Name: "Dr. David Wilson", Email: "david.wilson@university.edu", Role: RoleFaculty, Age: 45, JoinDate: "2020-03-10",
			Profile: map[string]string{"employeeId": "FAC2020001", "department": "Computer Science", "designation": "Professor"}}, DemoFacultyPassword},
		{User{ID: "F002", Name: "Dr. Emma Brown", Email: "emma.brown@university.edu", Role: RoleFaculty, Age: 38, JoinDate: "2019-08-15",
			Profile: map[string]string{"employeeId": "FAC2019002", "department": "Mathematics", "designation": "Associate Professor"}}, DemoFacultyPassword},
		{User{ID: "L001", Name: "Frank Taylor", Email: "frank.taylor@university.edu", Role: RoleLibrarian, Age: 35, JoinDate: "2021-06-01",
			Profile: map[string]string{"employeeId": "LIB2021001", "shift": "Morning"}}, DemoLibrarianPassword},
		{User{ID: "L002", Name: "Grace Lee", Email: "grace.lee@university.edu", Role: RoleLibrarian, Age: 28, JoinDate: "2022-01-10",
			Profile: map[string]string{"employeeId": "LIB2022002", "shift": "Evening"}}, DemoLibrarianPassword},
	}

	for i := range users {
		// MinCost keeps startup fast; these are demo credentials.
		hash, err := bcrypt.GenerateFromPassword([]byte(users[i].password), bcrypt.MinCost)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", users[i].user.ID, err)
		}
		u := users[i].user
		u.PasswordHash = string(hash)
		if err := store.AddUser(&u); err != nil {
			return err
		}
	}

	items := []Item{
		{ID: "B001", Type: ItemBook, Title: "Introduction to Algorithms", Publisher: "MIT Press", Year: 2022, ISBN: "978-0262046305", Author: "Thomas H. Cormen", Genre: "Computer Science", Pages: 1312, Available: true},
		{ID: "B002", Type: ItemBook, Title: "Clean Code", Publisher: "Prentice Hall", Year: 2008, ISBN: "978-0132350884", Author: "Robert C. Martin", Genre: "Software Engineering", Pages: 464, Available: true},
		{ID: "B003", Type: ItemBook, Title: "The Pragmatic Programmer", Publisher: "Addison-Wesley", Year: 2019, ISBN: "978-0135957059", Author: "David Thomas", Genre: "Software Development", Pages: 352, Available: true},
		{ID: "B004", Type: ItemBook, Title: "Design Patterns", Publisher: "Addison-Wesley", Year: 1994, ISBN: "978-0201633610", Author: "Gang of Four", Genre: "Software Architecture", Pages: 395, Available: true},
		{ID: "B005", Type: ItemBook, Title: "Structure and Interpretation of Computer Programs", Publisher: "MIT Press", Year: 1996, ISBN: "978-0262510871", Author: "Harold Abelson", Genre: "Computer Science", Pages: 657, Available: true},
		{ID: "B006", Type: ItemBook, Title: "Artificial Intelligence: A Modern Approach", Publisher: "Pearson", Year: 2020, ISBN: "978-0134610993", Author: "Stuart Russell", Genre: "Artificial Intelligence", Pages: 1136, Available: true},
		{ID: "M001", Type: ItemMagazine, Title: "National Geographic", Publisher: "National Geographic Society", Year: 2024, Issue: 1, Month: "January", Category: "Science & Nature", Available: true},
		{ID: "M002", Type: ItemMagazine, Title: "Scientific American", Publisher: "Springer Nature", Year: 2024, Issue: 2, Month: "February", Category: "Science", Available: true},
		{ID: "M003", Type: ItemMagazine, Title: "Wired", Publisher: "Condé Nast", Year: 2024, Issue: 3, Month: "March", Category: "Technology", Available: true},
		{ID: "M004", Type: ItemMagazine, Title: "Nature", Publisher: "Nature Publishing Group", Year: 2024, Issue: 4, Month: "April", Category: "Scientific Research", Available: true},
		{ID: "J001", Type: ItemJournal, Title: "Journal of Computer Science", Publisher: "ACM", Year: 2024, Volume: 45, Field: "Computer Science", Editor: "Dr. Sarah Mitchell", PeerReviewed: true, Available: true},
		{ID: "J002", Type: ItemJournal, Title: "Mathematical Reviews", Publisher: "AMS", Year: 2024, Volume: 120, Field: "Mathematics", Editor: "Dr. John Anderson", PeerReviewed: true, Available: true},
		{ID: "J003", Type: ItemJournal, Title: "Physical Review Letters", Publisher: "American Physical Society", Year: 2024, Volume: 132, Field: "Physics", Editor: "Dr. Maria Garcia", PeerReviewed: true, Available: true},
		{ID: "J004", Type: ItemJournal, Title: "IEEE Transactions on Pattern Analysis", Publisher: "IEEE", Year: 2024, Volume: 46, Field: "Machine Learning", Editor: "Dr. Li Wang", PeerReviewed: true, Available: true},
	}

	for i := range items {
		it := items[i]
		if err := store.AddItem(&it); err != nil {
			return err
		}
	}
	return nil
}
