package mocktest

import (
	"github.com/talentlens/talentlens/internal/domain/entities"
)

// bankQuestion is one entry of the fixed in-code question bank
type bankQuestion struct {
	text    string
	options [4]string
	answer  int
}

// questionBank holds 30 questions per category. The attempt engine draws 15
// of them per category by uniform shuffle-and-slice.
var questionBank = map[entities.QuestionCategory][]bankQuestion{
	entities.CategoryQuant: {
		{"What is 15% of 200?", [4]string{"20", "25", "30", "35"}, 2},
		{"If a train travels 60 km in 45 minutes, what is its speed in km/h?", [4]string{"75", "80", "85", "90"}, 1},
		{"What is the value of 7! / 5! ?", [4]string{"42", "49", "56", "35"}, 0},
		{"A shirt costs 800 after a 20% discount. What was the original price?", [4]string{"960", "1000", "1040", "1200"}, 1},
		{"What is the average of the first 10 natural numbers?", [4]string{"5", "5.5", "6", "6.5"}, 1},
		{"If x + y = 12 and x - y = 4, what is x?", [4]string{"6", "7", "8", "9"}, 2},
		{"What is the compound interest on 1000 at 10% for 2 years?", [4]string{"200", "210", "220", "230"}, 1},
		{"A can finish a job in 12 days, B in 6 days. Together they take?", [4]string{"3 days", "4 days", "5 days", "6 days"}, 1},
		{"What is the next number in the series 2, 6, 12, 20, 30?", [4]string{"40", "42", "44", "46"}, 1},
		{"The ratio of boys to girls is 3:2. If there are 30 boys, how many girls?", [4]string{"15", "18", "20", "24"}, 2},
		{"What is the square root of 1764?", [4]string{"38", "40", "42", "44"}, 2},
		{"If 40% of a number is 88, the number is?", [4]string{"200", "210", "220", "240"}, 2},
		{"A car covers 240 km in 4 hours. How long for 360 km at the same speed?", [4]string{"5 hours", "5.5 hours", "6 hours", "6.5 hours"}, 2},
		{"What is the probability of rolling an even number on a fair die?", [4]string{"1/6", "1/3", "1/2", "2/3"}, 2},
		{"Simple interest on 5000 at 8% per year for 3 years is?", [4]string{"1000", "1100", "1200", "1300"}, 2},
		{"What is 3/8 expressed as a percentage?", [4]string{"32.5%", "35%", "37.5%", "40%"}, 2},
		{"The perimeter of a square is 48 cm. What is its area?", [4]string{"121 sq cm", "132 sq cm", "144 sq cm", "156 sq cm"}, 2},
		{"If 5 pens cost 75, how much do 8 pens cost?", [4]string{"110", "115", "120", "125"}, 2},
		{"What is the LCM of 12 and 18?", [4]string{"24", "30", "36", "48"}, 2},
		{"A number increased by 25% becomes 75. The number is?", [4]string{"55", "58", "60", "62"}, 2},
		{"What is the value of 2^10?", [4]string{"512", "1024", "2048", "4096"}, 1},
		{"The sum of three consecutive integers is 72. The smallest is?", [4]string{"22", "23", "24", "25"}, 1},
		{"What is 0.25 × 0.4?", [4]string{"0.01", "0.1", "1.0", "0.001"}, 1},
		{"A clock shows 3:15. What is the angle between the hands?", [4]string{"0 degrees", "7.5 degrees", "15 degrees", "30 degrees"}, 1},
		{"If a:b = 2:3 and b:c = 4:5, what is a:c?", [4]string{"2:5", "8:15", "3:5", "6:10"}, 1},
		{"What is the HCF of 36 and 60?", [4]string{"6", "12", "18", "24"}, 1},
		{"20 workers build a wall in 15 days. How many days for 25 workers?", [4]string{"10", "12", "14", "18"}, 1},
		{"The area of a circle with radius 7 (use 22/7) is?", [4]string{"144", "154", "164", "174"}, 1},
		{"What is 111 × 11?", [4]string{"1211", "1221", "1231", "1241"}, 1},
		{"A man spends 80% of his income and saves 4000. His income is?", [4]string{"16000", "18000", "20000", "24000"}, 2},
	},
	entities.CategoryLogical: {
		{"Find the odd one out: Dog, Cat, Lion, Rose", [4]string{"Dog", "Cat", "Lion", "Rose"}, 3},
		{"If CAT is coded as DBU, how is DOG coded?", [4]string{"EPH", "EQH", "FPH", "EPI"}, 0},
		{"Which number completes the series: 1, 4, 9, 16, __?", [4]string{"20", "23", "25", "27"}, 2},
		{"All roses are flowers. Some flowers fade quickly. Therefore:", [4]string{"All roses fade quickly", "Some roses may fade quickly", "No roses fade", "Flowers are roses"}, 1},
		{"A is taller than B, B is taller than C. Who is shortest?", [4]string{"A", "B", "C", "Cannot say"}, 2},
		{"If Monday is the 1st, what day is the 15th?", [4]string{"Sunday", "Monday", "Tuesday", "Wednesday"}, 1},
		{"Mirror image of 'b' looks like?", [4]string{"d", "p", "q", "b"}, 0},
		{"Pointing to a photo, Ram says 'She is my father's only daughter'. Who is she?", [4]string{"His mother", "His sister", "His aunt", "His cousin"}, 1},
		{"What comes next: A, C, F, J, O, __?", [4]string{"S", "T", "U", "V"}, 2},
		{"If North becomes East, what does West become?", [4]string{"North", "South", "East", "West"}, 1},
		{"Find the odd one: 3, 5, 7, 9, 11", [4]string{"3", "5", "9", "11"}, 2},
		{"If 'pen' means 'book', 'book' means 'chair', what do you sit on?", [4]string{"pen", "book", "chair", "table"}, 1},
		{"Complete: 2, 3, 5, 8, 13, __?", [4]string{"18", "20", "21", "25"}, 2},
		{"A clock gains 5 minutes every hour. After 6 hours it gains?", [4]string{"25 minutes", "30 minutes", "35 minutes", "40 minutes"}, 1},
		{"Which word cannot be formed from TRANSPORTATION?", [4]string{"TRAIN", "NATION", "SPORT", "STATIONERY"}, 3},
		{"X is Y's brother, Y is Z's mother. X is Z's?", [4]string{"Father", "Uncle", "Brother", "Grandfather"}, 1},
		{"Five friends sit in a row. P is left of Q who is left of R. Who is in the middle of these three?", [4]string{"P", "Q", "R", "Cannot say"}, 1},
		{"If FRIEND is coded as GSJFOE, CANDLE becomes?", [4]string{"DBOEMF", "DBPEMF", "DCOEMF", "DBOFMF"}, 0},
		{"How many triangles are in a triangle split by its three medians?", [4]string{"4", "6", "12", "16"}, 3},
		{"Statement: Some cars are fast. All fast things are risky. Conclusion:", [4]string{"All cars are risky", "Some cars are risky", "No cars are risky", "Risky things are cars"}, 1},
		{"A man walks 5 km north, then 5 km east. How far from start?", [4]string{"5 km", "7.07 km", "10 km", "12 km"}, 1},
		{"What is the angle between clock hands at 6:00?", [4]string{"90 degrees", "120 degrees", "150 degrees", "180 degrees"}, 3},
		{"Find the next: Z, X, V, T, __?", [4]string{"Q", "R", "S", "P"}, 1},
		{"If yesterday was Friday's tomorrow, what is today?", [4]string{"Saturday", "Sunday", "Monday", "Friday"}, 1},
		{"Odd one out: Square, Circle, Triangle, Cube", [4]string{"Square", "Circle", "Triangle", "Cube"}, 3},
		{"Complete the analogy: Doctor : Hospital :: Teacher : __?", [4]string{"Books", "School", "Students", "Lessons"}, 1},
		{"If 2 = 6, 3 = 12, 4 = 20, then 5 = ?", [4]string{"25", "30", "32", "36"}, 1},
		{"Rearrange EOSRT to form a word meaning a place to buy things", [4]string{"ROTES", "STORE", "TORES", "ROSET"}, 1},
		{"Count the letters that look the same in a mirror: A, B, H, J", [4]string{"1", "2", "3", "4"}, 1},
		{"A cube has how many edges?", [4]string{"6", "8", "10", "12"}, 3},
	},
	entities.CategoryVerbal: {
		{"Choose the synonym of 'abundant'", [4]string{"scarce", "plentiful", "meager", "rare"}, 1},
		{"Choose the antonym of 'benevolent'", [4]string{"kind", "cruel", "generous", "gentle"}, 1},
		{"Complete: Neither the manager nor the employees __ aware of the change.", [4]string{"was", "were", "is", "has been"}, 1},
		{"Identify the correctly spelled word", [4]string{"accomodate", "acommodate", "accommodate", "acomodate"}, 2},
		{"'Break the ice' means:", [4]string{"To shatter something", "To start a conversation", "To cool down", "To end a friendship"}, 1},
		{"Choose the synonym of 'candid'", [4]string{"secretive", "frank", "dishonest", "shy"}, 1},
		{"The passive of 'She writes a letter' is:", [4]string{"A letter is written by her", "A letter was written by her", "A letter is being written", "A letter has been written"}, 0},
		{"Choose the antonym of 'transparent'", [4]string{"clear", "opaque", "visible", "obvious"}, 1},
		{"Fill in: He has been working here __ 2015.", [4]string{"for", "since", "from", "by"}, 1},
		{"'Once in a blue moon' means:", [4]string{"Very often", "Very rarely", "At night", "Every month"}, 1},
		{"Choose the synonym of 'diligent'", [4]string{"lazy", "hardworking", "careless", "slow"}, 1},
		{"One word for 'a person who speaks many languages'", [4]string{"linguist", "polyglot", "orator", "interpreter"}, 1},
		{"Choose the grammatically correct sentence", [4]string{"He don't like tea", "He doesn't likes tea", "He doesn't like tea", "He not like tea"}, 2},
		{"Choose the antonym of 'expand'", [4]string{"enlarge", "contract", "extend", "spread"}, 1},
		{"Fill in: The committee __ divided in its opinion.", [4]string{"are", "was", "were", "have been"}, 1},
		{"'To burn the midnight oil' means:", [4]string{"To waste resources", "To work late into the night", "To cause a fire", "To stay warm"}, 1},
		{"Choose the synonym of 'obsolete'", [4]string{"modern", "outdated", "current", "fresh"}, 1},
		{"The plural of 'criterion' is:", [4]string{"criterions", "criteria", "criterias", "criterion"}, 1},
		{"Choose the correct preposition: She is good __ mathematics.", [4]string{"in", "at", "on", "with"}, 1},
		{"Choose the antonym of 'ascend'", [4]string{"climb", "descend", "rise", "elevate"}, 1},
		{"One word for 'fear of closed spaces'", [4]string{"agoraphobia", "claustrophobia", "acrophobia", "hydrophobia"}, 1},
		{"Identify the part of speech of 'quickly'", [4]string{"adjective", "adverb", "noun", "verb"}, 1},
		{"Choose the synonym of 'meticulous'", [4]string{"careless", "thorough", "hasty", "rough"}, 1},
		{"The indirect form of 'He said, \"I am tired\"' is:", [4]string{"He said that he is tired", "He said that he was tired", "He says he was tired", "He said he is being tired"}, 1},
		{"Choose the correctly punctuated sentence", [4]string{"Its a nice day", "It's a nice day.", "Its' a nice day.", "It is a nice day,"}, 1},
		{"Choose the antonym of 'verbose'", [4]string{"wordy", "concise", "lengthy", "rambling"}, 1},
		{"Fill in: I would rather __ at home than go out.", [4]string{"staying", "stay", "to stay", "stayed"}, 1},
		{"'A blessing in disguise' means:", [4]string{"An obvious gift", "A hidden benefit", "A curse", "A ritual"}, 1},
		{"Choose the synonym of 'augment'", [4]string{"decrease", "increase", "maintain", "divide"}, 1},
		{"One word for 'a government by the people'", [4]string{"monarchy", "democracy", "oligarchy", "autocracy"}, 1},
	},
	entities.CategoryProgramming: {
		{"What is the time complexity of binary search?", [4]string{"O(n)", "O(log n)", "O(n log n)", "O(1)"}, 1},
		{"Which data structure uses FIFO ordering?", [4]string{"Stack", "Queue", "Tree", "Graph"}, 1},
		{"What does SQL stand for?", [4]string{"Structured Query Language", "Simple Query Language", "Standard Question Language", "Sequential Query Logic"}, 0},
		{"Which sorting algorithm has the best average-case complexity?", [4]string{"Bubble sort", "Selection sort", "Merge sort", "Insertion sort"}, 2},
		{"What is a pointer?", [4]string{"A data value", "A variable storing a memory address", "A function", "A loop construct"}, 1},
		{"Which of these is NOT an OOP principle?", [4]string{"Encapsulation", "Inheritance", "Compilation", "Polymorphism"}, 2},
		{"What is the worst-case complexity of quicksort?", [4]string{"O(n)", "O(n log n)", "O(n^2)", "O(log n)"}, 2},
		{"Which protocol is used to transfer web pages?", [4]string{"FTP", "SMTP", "HTTP", "SSH"}, 2},
		{"What does a stack overflow usually indicate?", [4]string{"Too much disk usage", "Unbounded recursion", "A network fault", "A syntax error"}, 1},
		{"Which data structure backs a typical LRU cache?", [4]string{"Array only", "Hash map + doubly linked list", "Binary heap", "Trie"}, 1},
		{"In databases, what does ACID stand for?", [4]string{"Atomicity, Consistency, Isolation, Durability", "Access, Control, Integrity, Data", "Atomic, Central, Isolated, Durable", "Availability, Consistency, Integrity, Distribution"}, 0},
		{"What is the output size of the SHA-256 hash function?", [4]string{"128 bits", "160 bits", "256 bits", "512 bits"}, 2},
		{"Which traversal visits a binary search tree in sorted order?", [4]string{"Preorder", "Inorder", "Postorder", "Level order"}, 1},
		{"What does REST stand for?", [4]string{"Remote Execution Standard Transfer", "Representational State Transfer", "Reliable Stateless Transport", "Resource Exchange Service Tool"}, 1},
		{"Which of these is a NoSQL database?", [4]string{"PostgreSQL", "MySQL", "MongoDB", "SQLite"}, 2},
		{"What is the space complexity of merge sort?", [4]string{"O(1)", "O(log n)", "O(n)", "O(n^2)"}, 2},
		{"Which keyword creates a goroutine in Go?", [4]string{"async", "go", "spawn", "thread"}, 1},
		{"What is a deadlock?", [4]string{"A crashed process", "Two processes waiting on each other forever", "Memory exhaustion", "A slow query"}, 1},
		{"Which HTTP status code means 'Not Found'?", [4]string{"400", "403", "404", "500"}, 2},
		{"What is the purpose of an index in a database?", [4]string{"Enforce uniqueness only", "Speed up lookups", "Compress data", "Back up tables"}, 1},
		{"Which structure gives O(1) average lookup by key?", [4]string{"Linked list", "Hash table", "Binary tree", "Array"}, 1},
		{"What does DNS resolve?", [4]string{"IP to MAC", "Domain names to IP addresses", "Ports to services", "URLs to files"}, 1},
		{"Which of these is a compiled language?", [4]string{"Python", "JavaScript", "Go", "Ruby"}, 2},
		{"What is tail recursion?", [4]string{"Recursion with two calls", "A recursive call as the last operation", "Recursion on lists only", "Infinite recursion"}, 1},
		{"What does git merge do?", [4]string{"Deletes a branch", "Combines histories of branches", "Reverts a commit", "Renames a repository"}, 1},
		{"Which complexity class describes linear search?", [4]string{"O(1)", "O(log n)", "O(n)", "O(n^2)"}, 2},
		{"What is a race condition?", [4]string{"A fast algorithm", "Outcome depending on unsynchronized timing", "A CPU benchmark", "A sorting technique"}, 1},
		{"Which port does HTTPS use by default?", [4]string{"21", "80", "443", "8080"}, 2},
		{"What is the main benefit of connection pooling?", [4]string{"Stronger encryption", "Reusing connections to cut setup cost", "Larger payloads", "Simpler schemas"}, 1},
		{"Which of these best describes idempotency?", [4]string{"Running once only", "Same result no matter how many times applied", "Parallel execution", "Random output"}, 1},
	},
}

// BankSize returns the number of bank questions for a category
func BankSize(category entities.QuestionCategory) int {
	return len(questionBank[category])
}
