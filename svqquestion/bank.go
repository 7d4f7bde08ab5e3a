package svqquestion

// Bank holds a standard set of freeform security questions, restored from
// the reference implementation this envelope's scheme was distilled from.
// None of these are required: callers may supply entirely custom Question
// values. They exist as ready-made, reasonably-high-entropy prompts for
// applications that don't want to author their own question set.
//
// Several of these are drawn from NordVPN's list of suggested security
// questions: https://nordvpn.com/blog/security-questions/

func FailedExam() Question {
	return NewFreeformQuestion(0, "What was the first exam you failed",
		NewExpectedAnswerFormat("<SCHOOL>, <SCHOOL_GRADE>, <SUBJECT>", "MIT, year 4, Python"))
}

func ParentsMet() Question {
	return NewFreeformQuestion(1, "In which city and which year did your parents meet?",
		NewExpectedAnswerFormat("<CITY>, <YEAR>", "London, 1973"))
}

func FirstConcert() Question {
	return NewFreeformQuestion(2, "What was the first concert you attended?",
		NewExpectedAnswerFormat("<ARTIST>, <LOCATION>, <YEAR>", "Jean-Michel Jarre, Paris La Défense, 1990"))
}

func FirstKissWhom() Question {
	return NewFreeformQuestion(3, "What was the name of the boy or the girl you first kissed?",
		NewExpectedAnswerFormat("<NAME>", "John Doe"))
}

func FirstKissLocation() Question {
	return NewFreeformQuestion(4, "Where were you when you had your first kiss?",
		NewExpectedAnswerFormat("<LOCATION>", "Central Park, New York"))
}

func SpouseMet() Question {
	return NewFreeformQuestion(5, "In what city and which year did you meet your spouse/significant other?",
		NewExpectedAnswerFormat("<CITY>, <YEAR>", "Tokyo, 1989"))
}

func ChildMiddleName() Question {
	return NewFreeformQuestion(6, "What is the middle name of your youngest child?",
		NewExpectedAnswerFormat("<NAME>", "Anne"))
}

func StuffedAnimal() Question {
	return NewFreeformQuestion(7, "What was the name of your first stuffed animal?",
		NewExpectedAnswerFormat("<NAME>", "Bobby"))
}

func OldestCousin() Question {
	return NewFreeformQuestion(8, "What is the name of your oldest cousin?",
		NewExpectedAnswerFormat("<NAME>", "Roxanne"))
}

func TeacherGrade3() Question {
	return NewFreeformQuestion(9, "What was the name of your teacher in third grade?",
		NewExpectedAnswerFormat("<NAME>", "Ali"))
}

func AppliedUniNoAttend() Question {
	return NewFreeformQuestion(10, "What is the name of a university you applied to but didn't attend?",
		NewExpectedAnswerFormat("<UNIVERSITY>", "Oxford"))
}

func FirstSchool() Question {
	return NewFreeformQuestion(11, "What was the name of your first school?",
		NewExpectedAnswerFormat("<SCHOOL>", "Hogwartz"))
}

func MathTeacherHighschool() Question {
	return NewFreeformQuestion(12, "What was the name of your math teacher in highschool?",
		NewExpectedAnswerFormat("<NAME>", "Mr. Smith"))
}

func DrivingsInstructor() Question {
	return NewFreeformQuestion(13, "What was the name of your driving instructor?",
		NewExpectedAnswerFormat("<NAME>", "Mr. Jones"))
}

func StreetFriendHighschool() Question {
	return NewFreeformQuestion(14, "What street did your best friend in highschool live on?",
		NewExpectedAnswerFormat("<STREET>", "Main Street"))
}

func FriendKindergarten() Question {
	return NewFreeformQuestion(15, "What was the name of your best friend in kindergarten?",
		NewExpectedAnswerFormat("<NAME>", "Timmy"))
}

func StreetAge8() Question {
	return NewFreeformQuestion(16, "What street did you live on when you were eight years old?",
		NewExpectedAnswerFormat("<STREET>", "Elm Street"))
}

// All returns the entire bank in ID order.
func All() []Question {
	return []Question{
		FailedExam(), ParentsMet(), FirstConcert(), FirstKissWhom(),
		FirstKissLocation(), SpouseMet(), ChildMiddleName(), StuffedAnimal(),
		OldestCousin(), TeacherGrade3(), AppliedUniNoAttend(), FirstSchool(),
		MathTeacherHighschool(), DrivingsInstructor(), StreetFriendHighschool(),
		FriendKindergarten(), StreetAge8(),
	}
}

// Default6 returns the first six questions in the bank, the standard
// N=6 set used by sample fixtures and the demo CLI's default configuration.
func Default6() []Question {
	return All()[:6]
}
