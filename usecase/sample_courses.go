package usecase

import (
	"github.com/learnly/server/domain/entities"
)

// SampleCourses returns the fixed list of courses the seeder guarantees to
// exist. Order is significant only within each course's lessons.
func SampleCourses() []entities.Course {
	return []entities.Course{
		{
			Title:       "Introduction to JavaScript",
			Description: "Learn the basics of JavaScript programming",
			Instructor:  "John Doe",
			Lessons: []entities.Lesson{
				{Title: "Variables and Data Types", Content: "Learn about variables and data types in JavaScript"},
				{Title: "Functions", Content: "Understand how to create and use functions in JavaScript"},
			},
		},
		{
			Title:       "Advanced React Techniques",
			Description: "Master advanced concepts in React development",
			Instructor:  "Jane Smith",
			Lessons: []entities.Lesson{
				{Title: "Hooks in Depth", Content: "Dive deep into React Hooks and their use cases"},
				{Title: "State Management with Redux", Content: "Learn how to manage complex state with Redux"},
			},
		},
		{
			Title:       "Node.js for Beginners",
			Description: "Get started with Node.js for building scalable backends",
			Instructor:  "Sarah Lee",
			Lessons: []entities.Lesson{
				{Title: "Setting up Node.js", Content: "Learn how to set up a Node.js environment"},
				{Title: "Building APIs with Express", Content: "Learn how to create APIs using Express.js"},
			},
		},
		{
			Title:       "Python for Data Science",
			Description: "Master Python programming for data science applications",
			Instructor:  "Michael Johnson",
			Lessons: []entities.Lesson{
				{Title: "Introduction to Python", Content: "Learn the basics of Python programming"},
				{Title: "Data Analysis with Pandas", Content: "Learn how to use Pandas for data manipulation"},
			},
		},
		{
			Title:       "Full Stack Development with MERN",
			Description: "Learn full stack development using MongoDB, Express, React, and Node.js",
			Instructor:  "Emily Davis",
			Lessons: []entities.Lesson{
				{Title: "Introduction to MERN Stack", Content: "Learn the components of the MERN stack"},
				{Title: "Building a Full Stack Application", Content: "Learn how to create a full stack app with MERN"},
			},
		},
		{
			Title:       "Machine Learning Basics",
			Description: "Understand the fundamentals of machine learning",
			Instructor:  "Chris Taylor",
			Lessons: []entities.Lesson{
				{Title: "Supervised Learning", Content: "Learn about supervised learning algorithms"},
				{Title: "Unsupervised Learning", Content: "Understand unsupervised learning techniques"},
			},
		},
		{
			Title:       "Web Development with HTML, CSS, and JavaScript",
			Description: "Learn how to build modern web applications",
			Instructor:  "Sophia Miller",
			Lessons: []entities.Lesson{
				{Title: "HTML Fundamentals", Content: "Learn the basics of HTML structure"},
				{Title: "Styling with CSS", Content: "Understand how to use CSS to style web pages"},
			},
		},
		{
			Title:       "Cloud Computing with AWS",
			Description: "Get hands-on experience with Amazon Web Services (AWS)",
			Instructor:  "David Martinez",
			Lessons: []entities.Lesson{
				{Title: "AWS Overview", Content: "Learn about the basics of AWS and cloud computing"},
				{Title: "Building a Web App on AWS", Content: "Learn how to deploy a simple app using AWS"},
			},
		},
		{
			Title:       "Data Structures and Algorithms",
			Description: "Learn about common data structures and algorithms for coding interviews",
			Instructor:  "Olivia Wilson",
			Lessons: []entities.Lesson{
				{Title: "Arrays and Linked Lists", Content: "Learn about arrays and linked lists"},
				{Title: "Sorting Algorithms", Content: "Understand different sorting algorithms"},
			},
		},
		{
			Title:       "Digital Marketing Essentials",
			Description: "Learn the fundamentals of digital marketing and social media strategies",
			Instructor:  "Lucas Brown",
			Lessons: []entities.Lesson{
				{Title: "Introduction to Digital Marketing", Content: "Learn about digital marketing channels"},
				{Title: "Social Media Marketing", Content: "Understand the importance of social media in marketing"},
			},
		},
	}
}
