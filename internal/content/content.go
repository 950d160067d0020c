package content

var (
	AboutMe = `I'm a Software Developer and Machine Learning Engineer based in New Brunswick, NJ. My expertise spans
**machine learning**, **computer vision**, and **full-stack development**. At the New Jersey Turnpike Authority, I
implement API communication pipelines and work with geographic information systems. Previously, I worked as a Data
Engineer at Kaaye Technologies, where I revamped predictive forecast models using Apache Spark.

My research experience includes working as a Research Assistant at Rutgers University, developing classification
models for turfgrass species and implementing real-time vehicle speed detection systems. I'm passionate about
developing practical AI solutions that bridge theoretical concepts with real-world applications. I've contributed
to various ML projects including generative replay models, spiking neural networks, and computer vision systems.`

	ProjectOne = `Implemented a Hippocampal Memory Indexing module to mimic brain memory storage for NLP tasks,
improving task performance by 25% and reducing catastrophic forgetting by 40%.`

	ProjectTwo = `Benchmarked SpikeNet on a 17M+ edge dynamic graph dataset, achieving 67% accuracy in edge and
node property prediction while improving efficiency by 15%.`

	ProjectThree = `Hosted a YOLOv7-based live-streaming web app on AWS using Flask, improving image throughput
from 12 to 15 FPS with 25% enhanced detection accuracy.`

	ProjectFour = `Deployed a car rental website on AWS EC2 with authentication, session management, payment
processing via Stripe API, and real-time tracking with Maps API.`
)

// Default returns the display content for the site.
func Default() Site {
	return Site{
		Profile: Profile{
			Name:      "Priyanshu",
			Headline:  "Machine Learning Engineer & Software Developer",
			Tagline:   "Machine Learning Engineer & Software Developer focused on AI solutions",
			Summary:   "Developer, designer, and creator.",
			About:     AboutMe,
			ResumeURL: "/static/resume.pdf",
			Email:     "pshrivastava403@outlook.com",
			Phone:     "+1 (732) 522-6490",
			PhoneHref: "tel:+17325226490",
			LinkedIn:  Link{Name: "linkedin.com/in/priy4nshu", Href: "https://linkedin.com/in/priy4nshu"},
			GitHubURL: "https://github.com/Spriy4nshu",
			SiteURL:   "https://priyanshu.id",
		},
		Nav: []Link{
			{Name: "Home", Href: "#home"},
			{Name: "About", Href: "#about"},
			{Name: "Projects", Href: "#projects"},
			{Name: "Skills", Href: "#skills"},
			{Name: "Education", Href: "#education"},
			{Name: "Experience", Href: "#experience"},
			{Name: "Contact", Href: "#contact"},
		},
		FooterLinks: []Link{
			{Name: "Home", Href: "#home"},
			{Name: "About", Href: "#about"},
			{Name: "Projects", Href: "#projects"},
			{Name: "Contact", Href: "#contact"},
		},
		Socials: []Link{
			{Name: "GitHub", Href: "https://github.com/Spriy4nshu"},
			{Name: "LinkedIn", Href: "https://www.linkedin.com/in/priy4nshu/"},
			{Name: "Kaggle", Href: "https://www.kaggle.com/priyanshu403"},
		},
		Projects: []Project{
			{
				Title:        "Generative Replay with Compressed Features",
				Description:  ProjectOne,
				ImageSrc:     "/static/img/project-ai.svg",
				Technologies: []string{"PyTorch", "BERT", "GPT-2", "LAMOL"},
				ProjectURL:   "https://github.com/Spriy4nshu/generative_replay",
				GitHubURL:    "https://github.com/Spriy4nshu/generative_replay",
			},
			{
				Title:        "Evaluating SpikeNet on Temporal Graphs",
				Description:  ProjectTwo,
				ImageSrc:     "/static/img/project-portfolio.svg",
				Technologies: []string{"SnnTorch", "Graph Neural Networks", "TGBN"},
				ProjectURL:   "https://github.com/Spriy4nshu/tgbn-spikenet",
				GitHubURL:    "https://github.com/Spriy4nshu/tgbn-spikenet",
			},
			{
				Title:        "Real-Time Vehicle Speed Detection",
				Description:  ProjectThree,
				ImageSrc:     "/static/img/project-ecommerce.svg",
				Technologies: []string{"Python", "YOLOv7", "Flask", "AWS", "FFmpeg"},
				ProjectURL:   "https://github.com/qm46/yolo-speed-estimation",
				GitHubURL:    "https://github.com/qm46/yolo-speed-estimation",
			},
			{
				Title:        "Car Renting Website - REYOCA",
				Description:  ProjectFour,
				ImageSrc:     "/static/img/project-website.svg",
				Technologies: []string{"Node.js", "MySQL", "AWS", "Maps API", "Stripe API"},
				ProjectURL:   "https://github.com/SoftwareG4/REYOCA",
				GitHubURL:    "https://github.com/SoftwareG4/REYOCA",
			},
		},
		Skills: []SkillCategory{
			{Name: "languages", Skills: []string{"Python", "R", "MATLAB", "C++", "Java", "JavaScript", "SQL", "NoSQL", "BASH"}},
			{Name: "Machine Learning", Skills: []string{"PyTorch", "TensorFlow", "KERAS", "Computer Vision", "NLP", "LSTM", "SVM"}},
			{Name: "Deep Learning", Skills: []string{"Reinforcement Learning", "StableBaseline-3", "Gymnasium", "Transformers", "Neural Networks"}},
			{Name: "Data Engineering", Skills: []string{"Spark", "Hadoop", "ETL Pipelines", "Docker", "Kubernetes", "AWS"}},
			{Name: "frameworks", Skills: []string{"Flask", "Next.js", "React", "Node.js", "Spring Boot", "REST"}},
			{Name: "databases", Skills: []string{"MySQL", "MongoDB", "Firebase", "DynamoDB", "S3"}},
		},
		Education: []Entry{
			{
				Title:        "Master of Science in Computer Science",
				Organization: "Rutgers University, New Brunswick",
				Dates:        "September 2022 - May 2024",
				Notes: []string{
					"GPA: 3.92/4.0",
					"Research: Developed classification models for turfgrass species, created vehicle speed detection systems using YOLOv7",
					"Activities and societies: Astronomical Society and Chess Club",
				},
			},
			{
				Title:        "Bachelor of Engineering in Electronics and Telecommunication",
				Organization: "Mumbai University, Mumbai, India",
				Dates:        "August 2016 - May 2020",
				Notes: []string{
					"GPA: 3.76/4.0",
					"Robotics Competition 2016: Winner",
					"Activities and societies: Member of Extension Working Committee",
				},
			},
		},
		Experience: []Entry{
			{
				Title:        "Software Developer",
				Organization: "New Jersey Turnpike Authority, Woodbridge, NJ",
				Dates:        "July 2024 - Present",
				Notes: []string{
					"Implemented an API communication pipeline between Enterprise Asset Management System (SOAP) and Fluid Management System (REST) to maintain and manage fluid dispense information at NJTA Depots",
					"Created a Linear Referencing System to incorporate new ramps acquired for Garden State Parkway routes by NJTA in enterprise geographic information system using ArcGIS Pro",
					"Designed a communication pipeline between Loadrite (Loader Weighing Scale System) and NWOS (NJTA Weather Operation System) to maintain Salt inventory during winter season",
				},
			},
			{
				Title:        "Research Assistant",
				Organization: "Plant Biology Department, Rutgers University, New Brunswick, NJ",
				Dates:        "April 2023 - May 2024",
				Notes: []string{
					"Modelled a VGG-19 classification model for phenotyping 7 different turfgrass species to improve the efficiency and remove a targeted bias of manual phenotyping",
					"Generated a Graphical Pedigree dataset for 12 species of turfgrass to obtain a Family link of any plant from any year using a recursive query to maintain dynamism",
					"Developed TurfCV, a Python library that takes an image of turfgrass/seed as input and analyzes the physical aspect (phenotype) and predicts (genotype) the future growth of the plant",
				},
			},
			{
				Title:        "Research Assistant",
				Organization: "Durandal Lab, Rutgers University, Piscataway, NJ",
				Dates:        "November 2023 - May 2024",
				Notes: []string{
					"Hosted a real-time live streaming web application on AWS EC2 using Flask by collecting frames from the PSDK module of YOLOv7, which resulted in converting them to 15fps video clips using FFmpeg, reducing latency by 20%",
					"Improved the efficiency of the number of images produced by the YOLOv7 module by 25%, which resulted in the detection of the speed of the vehicles from 12 images per second to 15 images per second, enhancing detection accuracy by 25%",
				},
			},
			{
				Title:        "Data Engineer",
				Organization: "Kaaye Technologies LTD, Navi Mumbai, India",
				Dates:        "November 2020 - October 2021",
				Notes: []string{
					"Revamped predictive forecast and classification models (LSTM, SVM) by leveraging Apache Spark for efficient distributed data processing, which resulted in scalable data storage using MongoDB and reduced processing time by 40%",
					"Achieved model accuracies between 85-95% by analyzing historical data to identify past trends, which resulted in providing solutions to 5 retail-based clients, increasing their sales by an average of 15%",
				},
			},
			{
				Title:        "Machine Learning Intern",
				Organization: "ValueFirst, Gurgaon, India",
				Dates:        "February 2020 - August 2020",
				Notes: []string{
					"Collaborated on an internal project to fully automate the employee onboarding process by reducing manual intervention by 35-50%, which resulted in efficient document verification and information extraction, saving significant time",
					"Built a Naive Bayes classifier for email spam detection by achieving 95% accuracy, which resulted in effective spam filtering",
				},
			},
		},
		Publications: []Publication{
			{
				Title: "Classification of Grains and Quality Analysis using Deep Learning",
				Venue: "International Journal of Engineering and Advanced Technology (IJEAT), October 2021",
				URL:   "https://scholar.google.com/citations?view_op=view_citation&hl=en&user=fK656bEAAAAJ&citation_for_view=fK656bEAAAAJ:d1gkVwhDpl0C",
				Label: "View on Google Scholar",
			},
		},
	}
}
